// Package paging provides offset-based pagination utilities for the list
// endpoints of the FSND services.
//
// The window arithmetic is shared by in-memory slicing and storage queries:
//
//	start = (page - 1) * pageSize
//	end   = start + pageSize
//
// Both bounds are clamped to the number of records. A page past the end is an
// empty page, not an error, and so is a page below 1 or a zero page size. Only
// a negative page size is rejected, with ErrInvalidPageSize.
//
// # In-memory slicing
//
//	page, err := paging.Paginate(questions, 3, 10)
//	// 25 questions: page.Items holds questions 21..25, page.Total is 25
//
// # Storage-backed slicing
//
//	page, err := paging.Query(ctx, params,
//	    func(ctx context.Context) (int, error) { return repo.Count(ctx, filter) },
//	    func(ctx context.Context, offset, limit int) ([]*Question, error) {
//	        return repo.List(ctx, filter, offset, limit)
//	    })
//
// Whether an empty page is a 404 or a 200 with an empty list is decided by the
// handler, never by this package.
package paging
