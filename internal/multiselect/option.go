package multiselect

// Option is a single selectable item. Value is the unique key used for focus
// and selection; Label is what gets rendered.
type Option struct {
	Label string `json:"label" toml:"label"`
	Value string `json:"value" toml:"value"`
}

const noEntry = -1

type entry struct {
	option   Option
	prev     int
	next     int
	position int
}

// Index is an immutable, order-preserving lookup over an option list. Entries
// live in an arena addressed by position; neighbours are stored as arena
// offsets, so lookup, successor and predecessor are all O(1).
//
// Duplicate values are undefined behaviour: the lookup table keeps the last
// entry for a value while the chain still holds a node per input position.
type Index struct {
	entries []entry
	byValue map[string]int
}

// Entry is a read-only view of one indexed option.
type Entry struct {
	Option   Option
	Position int

	prev string
	next string

	hasPrev bool
	hasNext bool
}

// PreviousKey returns the value of the preceding option, if any.
func (e Entry) PreviousKey() (string, bool) {
	return e.prev, e.hasPrev
}

// NextKey returns the value of the following option, if any.
func (e Entry) NextKey() (string, bool) {
	return e.next, e.hasNext
}

// BuildIndex links the options in a single pass.
func BuildIndex(options []Option) *Index {
	idx := &Index{
		entries: make([]entry, len(options)),
		byValue: make(map[string]int, len(options)),
	}
	for i, opt := range options {
		idx.entries[i] = entry{option: opt, prev: noEntry, next: noEntry, position: i}
		if i > 0 {
			idx.entries[i].prev = i - 1
			idx.entries[i-1].next = i
		}
		idx.byValue[opt.Value] = i
	}
	return idx
}

// Len reports the number of indexed positions.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// First returns the value of the first option.
func (idx *Index) First() (string, bool) {
	if idx.Len() == 0 {
		return "", false
	}
	return idx.entries[0].option.Value, true
}

// Lookup returns the entry registered for value.
func (idx *Index) Lookup(value string) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	pos, ok := idx.byValue[value]
	if !ok {
		return Entry{}, false
	}
	return idx.entryAt(pos), true
}

// Next returns the successor of value.
func (idx *Index) Next(value string) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	pos, ok := idx.byValue[value]
	if !ok || idx.entries[pos].next == noEntry {
		return Entry{}, false
	}
	return idx.entryAt(idx.entries[pos].next), true
}

// Previous returns the predecessor of value.
func (idx *Index) Previous(value string) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	pos, ok := idx.byValue[value]
	if !ok || idx.entries[pos].prev == noEntry {
		return Entry{}, false
	}
	return idx.entryAt(idx.entries[pos].prev), true
}

// Options returns a copy of the indexed options in input order.
func (idx *Index) Options() []Option {
	if idx.Len() == 0 {
		return nil
	}
	out := make([]Option, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.option
	}
	return out
}

func (idx *Index) entryAt(pos int) Entry {
	e := idx.entries[pos]
	out := Entry{Option: e.option, Position: e.position}
	if e.prev != noEntry {
		out.prev = idx.entries[e.prev].option.Value
		out.hasPrev = true
	}
	if e.next != noEntry {
		out.next = idx.entries[e.next].option.Value
		out.hasNext = true
	}
	return out
}
