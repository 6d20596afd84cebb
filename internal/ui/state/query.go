package state

import "unicode"

// Query holds the filter text typed into the prompt and the rune offset of
// the caret inside it.
type Query struct {
	Text   string
	Cursor int
}

// Set replaces the query text and clamps the caret.
func (q *Query) Set(text string, cursor int) {
	q.Text = text
	runes := []rune(q.Text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	q.Cursor = cursor
}

// CursorPos returns the rune offset of the caret.
func (q *Query) CursorPos() int {
	runes := []rune(q.Text)
	if q.Cursor < 0 {
		return 0
	}
	if q.Cursor > len(runes) {
		return len(runes)
	}
	return q.Cursor
}

// Insert inserts text at the caret.
func (q *Query) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(q.Text)
	pos := q.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	q.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the caret.
func (q *Query) DeleteRuneBackward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	q.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the caret.
func (q *Query) DeleteWordBackward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	q.Set(string(updated), i)
	return true
}

// Clear empties the query. It reports whether anything was removed.
func (q *Query) Clear() bool {
	if q.Text == "" {
		return false
	}
	q.Set("", 0)
	return true
}

// MoveStart moves the caret to the start.
func (q *Query) MoveStart() bool {
	if q.CursorPos() == 0 {
		return false
	}
	q.Cursor = 0
	return true
}

// MoveEnd moves the caret to the end.
func (q *Query) MoveEnd() bool {
	end := len([]rune(q.Text))
	if q.CursorPos() == end {
		return false
	}
	q.Cursor = end
	return true
}

// MoveWordBackward moves the caret one word backward.
func (q *Query) MoveWordBackward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	if i == pos {
		return false
	}
	q.Cursor = i
	return true
}

// MoveWordForward moves the caret one word forward.
func (q *Query) MoveWordForward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	q.Cursor = i
	return true
}

// MoveRuneBackward moves the caret one rune backward.
func (q *Query) MoveRuneBackward() bool {
	if q.CursorPos() == 0 {
		return false
	}
	q.Cursor = q.CursorPos() - 1
	return true
}

// MoveRuneForward moves the caret one rune forward.
func (q *Query) MoveRuneForward() bool {
	runes := []rune(q.Text)
	pos := q.CursorPos()
	if pos >= len(runes) {
		return false
	}
	q.Cursor = pos + 1
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
