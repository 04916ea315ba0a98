package paging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_ThirdPageOfTwentyFive(t *testing.T) {
	page, err := Paginate(seq(25), 3, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.Equal(t, 25, page.Total)
	assert.False(t, page.HasNext())
}

func TestPaginate_PagePastTheEnd(t *testing.T) {
	page, err := Paginate(seq(25), 10, 10)
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)
	assert.True(t, page.Empty())
}

func TestPaginate_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name     string
		records  []int
		page     int
		pageSize int
	}{
		{"zero page", seq(5), 0, 10},
		{"negative page", seq(5), -3, 10},
		{"zero page size", seq(5), 1, 0},
		{"nil records", nil, 1, 10},
		{"empty records", []int{}, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(tt.records, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Equal(t, len(tt.records), page.Total)
		})
	}
}

func TestPaginate_NegativePageSize(t *testing.T) {
	_, err := Paginate(seq(5), 1, -1)
	assert.True(t, errors.Is(err, ErrInvalidPageSize))
}

func TestPaginate_PageNeverExceedsPageSize(t *testing.T) {
	records := seq(37)
	for size := 1; size <= 40; size++ {
		for p := 1; p <= 40; p++ {
			page, err := Paginate(records, p, size)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Items), size)
			if (p-1)*size >= len(records) {
				assert.Empty(t, page.Items, "page %d size %d", p, size)
			}
		}
	}
}

func TestPaginate_PagesPartitionRecords(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		records := seq(n)
		for _, size := range []int{1, 3, 10, 33} {
			var joined []int
			for p := 1; ; p++ {
				page, err := Paginate(records, p, size)
				require.NoError(t, err)
				if page.Empty() {
					break
				}
				joined = append(joined, page.Items...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, records, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	records := seq(5)
	page, err := Paginate(records, 1, 3)
	require.NoError(t, err)

	page.Items[0] = 99
	assert.Equal(t, 1, records[0])
}

func TestWindow(t *testing.T) {
	tests := []struct {
		total, page, size int
		offset, limit     int
	}{
		{25, 1, 10, 0, 10},
		{25, 3, 10, 20, 5},
		{25, 4, 10, 25, 0},
		{0, 1, 10, 0, 0},
		{10, 0, 10, 0, 0},
		{10, 2, 0, 0, 0},
	}
	for _, tt := range tests {
		offset, limit, err := Window(tt.total, tt.page, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, offset)
		assert.Equal(t, tt.limit, limit)
	}

	_, _, err := Window(10, 1, -5)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestNormalizeParams(t *testing.T) {
	p := NormalizeParams(Params{}, 0, 0)
	assert.Equal(t, Params{Page: 1, PageSize: DefaultPageSize}, p)

	p = NormalizeParams(Params{Page: 4, PageSize: 500}, 10, 100)
	assert.Equal(t, Params{Page: 4, PageSize: 100}, p)

	p = NormalizeParams(Params{Page: -2, PageSize: -1}, 20, 100)
	assert.Equal(t, Params{Page: 1, PageSize: 20}, p)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestToResult(t *testing.T) {
	res := ToResult(Page[int]{Total: 12, Page: 1, PageSize: 10})
	assert.NotNil(t, res.Items)
	assert.True(t, res.HasNextPage)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 2, res.TotalPages)
}

func TestQuery(t *testing.T) {
	records := seq(25)
	count := func(ctx context.Context) (int, error) { return len(records), nil }

	var gotOffset, gotLimit int
	load := func(ctx context.Context, offset, limit int) ([]int, error) {
		gotOffset, gotLimit = offset, limit
		return records[offset : offset+limit], nil
	}

	page, err := Query(context.Background(), Params{Page: 3, PageSize: 10}, count, load)
	require.NoError(t, err)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.Equal(t, 25, page.Total)
}

func TestQuery_SkipsLoadPastTheEnd(t *testing.T) {
	called := false
	count := func(ctx context.Context) (int, error) { return 25, nil }
	load := func(ctx context.Context, offset, limit int) ([]int, error) {
		called = true
		return nil, nil
	}

	page, err := Query(context.Background(), Params{Page: 10, PageSize: 10}, count, load)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)
}

func TestQuery_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Query(context.Background(), Params{Page: 1, PageSize: 10},
		func(ctx context.Context) (int, error) { return 0, boom },
		func(ctx context.Context, offset, limit int) ([]int, error) { return nil, nil })
	assert.ErrorIs(t, err, boom)

	_, err = Query(context.Background(), Params{Page: 1, PageSize: 10},
		func(ctx context.Context) (int, error) { return 3, nil },
		func(ctx context.Context, offset, limit int) ([]int, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
