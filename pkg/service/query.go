package service

import (
	"github.com/polyrpc/demoapi/pkg/api/types"
	"github.com/polyrpc/demoapi/pkg/validation"
)

// paginate slices items to the requested 1-based window. The slice is
// clamped to the collection bounds: an out-of-range page yields an
// empty item list with Total still reflecting the full filtered count.
// page and pageSize below 1 are rejected.
func paginate[T any](items []T, page, pageSize int) (types.Page[T], error) {
	res := validation.NewResult()
	if page < 1 {
		res.AddError(validation.NewMinError("page", validation.LocationQuery, 1, page))
	}
	if pageSize < 1 {
		res.AddError(validation.NewMinError("pageSize", validation.LocationQuery, 1, pageSize))
	}
	if err := res.Err(); err != nil {
		return types.Page[T]{}, err
	}

	total := len(items)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return types.NewPage(items[start:end], total, page, pageSize), nil
}

// filter returns the items matching the predicate, preserving order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
