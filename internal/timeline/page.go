package timeline

// DefaultPageSize is the timeline view's fixed page size.
const DefaultPageSize = 5

// Page is one window into an event sequence.
type Page struct {
	Events      []Event
	Number      int
	TotalPages  int
	PageSize    int
	TotalEvents int
	HasPrev     bool
	HasNext     bool
}

// Paginate slices events into the requested page. The page number is
// clamped to [1, ceil(len/size)]; total pages is always at least 1, even
// for an empty collection. A non-positive size falls back to the default.
func Paginate(events []Event, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(events)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Events:      events[start:end],
		Number:      page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalEvents: total,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
}
