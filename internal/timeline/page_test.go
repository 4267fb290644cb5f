package timeline

import "testing"

func makeEvents(n int) []Event {
	events := make([]Event, n)
	for i := range events {
		events[i] = Event{ID: int64(n - i), Title: "Event", Category: CategoryGeneralLog}
	}
	return events
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		wantPage    int
		wantLen     int
		wantPages   int
		wantHasPrev bool
		wantHasNext bool
	}{
		{name: "first of three", total: 12, page: 1, wantPage: 1, wantLen: 5, wantPages: 3, wantHasNext: true},
		{name: "middle page", total: 12, page: 2, wantPage: 2, wantLen: 5, wantPages: 3, wantHasPrev: true, wantHasNext: true},
		{name: "last page partial", total: 12, page: 3, wantPage: 3, wantLen: 2, wantPages: 3, wantHasPrev: true},
		{name: "page clamped high", total: 12, page: 99, wantPage: 3, wantLen: 2, wantPages: 3, wantHasPrev: true},
		{name: "page clamped low", total: 12, page: 0, wantPage: 1, wantLen: 5, wantPages: 3, wantHasNext: true},
		{name: "negative page", total: 12, page: -4, wantPage: 1, wantLen: 5, wantPages: 3, wantHasNext: true},
		{name: "exact multiple", total: 10, page: 2, wantPage: 2, wantLen: 5, wantPages: 2, wantHasPrev: true},
		{name: "single short page", total: 3, page: 1, wantPage: 1, wantLen: 3, wantPages: 1},
		{name: "empty collection", total: 0, page: 1, wantPage: 1, wantLen: 0, wantPages: 1},
		{name: "empty collection high page", total: 0, page: 7, wantPage: 1, wantLen: 0, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makeEvents(tt.total), tt.page, DefaultPageSize)

			if page.Number != tt.wantPage {
				t.Errorf("Number = %d, want %d", page.Number, tt.wantPage)
			}
			if len(page.Events) != tt.wantLen {
				t.Errorf("len(Events) = %d, want %d", len(page.Events), tt.wantLen)
			}
			if page.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantPages)
			}
			if page.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", page.HasPrev, tt.wantHasPrev)
			}
			if page.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", page.HasNext, tt.wantHasNext)
			}
			if page.TotalEvents != tt.total {
				t.Errorf("TotalEvents = %d, want %d", page.TotalEvents, tt.total)
			}
		})
	}
}

func TestPaginatePreservesOrderWithinPage(t *testing.T) {
	events := makeEvents(12)
	page := Paginate(events, 2, DefaultPageSize)

	// Page 2 of 12 descending events holds IDs 7..3.
	wantFirst, wantLast := int64(7), int64(3)
	if page.Events[0].ID != wantFirst || page.Events[len(page.Events)-1].ID != wantLast {
		t.Errorf("page 2 spans IDs %d..%d, want %d..%d",
			page.Events[0].ID, page.Events[len(page.Events)-1].ID, wantFirst, wantLast)
	}
}

func TestPaginateFallbackSize(t *testing.T) {
	page := Paginate(makeEvents(7), 1, 0)
	if page.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want default %d", page.PageSize, DefaultPageSize)
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
}
