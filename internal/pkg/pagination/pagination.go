package pagination

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// NormalizeSize clamps a requested page size into the allowed range.
func NormalizeSize(size int) int {
	if size <= 0 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// NormalizePage floors a requested page number at the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// TotalPages computes the page count for totalItems at the given size,
// floored at 1 so an empty collection still renders as one (empty) page.
func TotalPages(totalItems int64, size int) int {
	size = NormalizeSize(size)
	if totalItems <= 0 {
		return 1
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// SliceIndices converts a 1-based page into start/end indices for slicing an
// in-memory collection, clamped to its bounds.
func SliceIndices(page, size, totalItems int) (start, end int) {
	size = NormalizeSize(size)
	page = NormalizePage(page)

	start = (page - 1) * size
	end = start + size

	if start >= totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
