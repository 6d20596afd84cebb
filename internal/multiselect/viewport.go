package multiselect

// VisibleOption is an option inside the current window tagged with its
// absolute position in the full list.
type VisibleOption struct {
	Option
	Position int
}

// VisibleSlice projects the window [start, end) of s onto the option list.
func VisibleSlice(s State) []VisibleOption {
	total := s.index.Len()
	start, end := s.windowStart, s.windowEnd
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if start >= end {
		return nil
	}
	out := make([]VisibleOption, 0, end-start)
	for pos := start; pos < end; pos++ {
		out = append(out, VisibleOption{Option: s.index.entries[pos].option, Position: pos})
	}
	return out
}
