package paging

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is the page size used when a request does not carry one
const DefaultPageSize = 10

// ErrInvalidPageSize is returned when a negative page size is requested
var ErrInvalidPageSize = errors.New("paging: page size must not be negative")

// Params holds the unified pagination parameters
type Params struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

// Page is a window over an already filtered record sequence
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// Empty reports whether the window holds no records
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// HasNext reports whether records exist after this window
func (p Page[T]) HasNext() bool {
	if p.Page < 1 || p.PageSize <= 0 {
		return false
	}
	return p.Page*p.PageSize < p.Total
}

// Result holds the pagination result
type Result[T any] struct {
	Items       []T  `json:"items"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next"`
}

// NormalizeParams fills in defaults and caps the page size.
// A zero or negative page becomes 1; a zero or negative size becomes defaultSize.
func NormalizeParams(params Params, defaultSize, maxSize int) Params {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = defaultSize
	}
	if maxSize > 0 && params.PageSize > maxSize {
		params.PageSize = maxSize
	}
	return params
}

// Window returns the half-open [offset, offset+limit) bounds of a page over
// total records. Bounds are clamped to total, so a page past the end has limit 0.
func Window(total, page, pageSize int) (offset, limit int, err error) {
	if pageSize < 0 {
		return 0, 0, ErrInvalidPageSize
	}
	if total < 0 {
		total = 0
	}
	if page < 1 || pageSize == 0 {
		return 0, 0, nil
	}

	start := (page - 1) * pageSize
	if start >= total || start < 0 {
		return total, 0, nil
	}
	end := start + pageSize
	if end > total || end < start {
		end = total
	}
	return start, end - start, nil
}

// TotalPages returns how many pages of pageSize are needed to hold total records
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate slices records into the requested page.
// The returned Total is always len(records), never the page length.
func Paginate[T any](records []T, page, pageSize int) (Page[T], error) {
	offset, limit, err := Window(len(records), page, pageSize)
	if err != nil {
		return Page[T]{}, err
	}

	items := make([]T, limit)
	copy(items, records[offset:offset+limit])

	return Page[T]{
		Items:    items,
		Total:    len(records),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ToResult converts a page into its JSON envelope
func ToResult[T any](p Page[T]) *Result[T] {
	items := p.Items
	if items == nil {
		items = make([]T, 0)
	}
	return &Result[T]{
		Items:       items,
		Total:       p.Total,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  TotalPages(p.Total, p.PageSize),
		HasNextPage: p.HasNext(),
	}
}

// PagingFunc loads the records of one window from storage. The total comes
// from the CountFunc run before it.
type PagingFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// CountFunc reports the total number of records matching the current filter
type CountFunc func(ctx context.Context) (int, error)

// Query applies offset pagination using a storage callback. The total is
// counted first so that the window can be clamped before the load.
func Query[T any](ctx context.Context, params Params, count CountFunc, load PagingFunc[T]) (Page[T], error) {
	total, err := count(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("pagination count error: %w", err)
	}

	offset, limit, err := Window(total, params.Page, params.PageSize)
	if err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0)
	if limit > 0 {
		loaded, err := load(ctx, offset, limit)
		if err != nil {
			return Page[T]{}, fmt.Errorf("pagination error: %w", err)
		}
		if len(loaded) > limit {
			loaded = loaded[:limit]
		}
		items = append(items, loaded...)
	}

	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}
