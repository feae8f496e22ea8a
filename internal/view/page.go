package view

// PageState is the pagination cursor: a 1-based current page and a fixed
// positive page size.
type PageState struct {
	Current int `json:"current"`
	Size    int `json:"size"`
}

// TotalPages returns ceil(count/size). Zero items means zero pages - there
// is no minimum of one, and callers must handle the empty case.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Window returns the [start, end) index range for the current page over a
// collection of count items. The paginator does not clamp: an out-of-range
// page yields an empty window, and whoever drives the page state must reset
// to page 1 whenever a filter input changes.
func Window(count int, st PageState) (start, end int) {
	if st.Size <= 0 {
		return 0, count
	}
	start = (st.Current - 1) * st.Size
	if start < 0 || start >= count {
		return 0, 0
	}
	end = start + st.Size
	if end > count {
		end = count
	}
	return start, end
}
