package content

// DefaultPageSize is the number of items per portfolio or blog page.
const DefaultPageSize = 6

// Page is one 1-based page of a filtered listing.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	// Fallback is true when Items come from placeholder content.
	Fallback bool
}

// Paginate slices items into 1-based pages of size (DefaultPageSize when
// size <= 0). Pages below 1 become the first page and pages past the end
// are clamped to the last.
func Paginate[T any](items []T, page, size int) *Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}

	start := min((page-1)*size, total)
	end := min(start+size, total)
	return &Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
	}
}
