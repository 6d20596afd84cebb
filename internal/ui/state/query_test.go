package state

import "testing"

func TestInsertAndDeleteQueryText(t *testing.T) {
	var q Query

	if !q.Insert("ab") {
		t.Fatal("expected insert to succeed")
	}
	if q.Text != "ab" || q.Cursor != 2 {
		t.Fatalf("unexpected query state %q/%d", q.Text, q.Cursor)
	}

	q.Cursor = 1
	if !q.Insert("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if q.Text != "azb" {
		t.Fatalf("expected insert into middle, got %q", q.Text)
	}
	if q.Cursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", q.Cursor)
	}

	if !q.DeleteRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if q.Text != "ab" || q.Cursor != 1 {
		t.Fatalf("unexpected state after delete %q/%d", q.Text, q.Cursor)
	}

	q.Set("abc def", len("abc def"))
	if !q.DeleteWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if q.Text != "abc " {
		t.Fatalf("expected trailing word removed, got %q", q.Text)
	}

	q.Set("abc", 0)
	if q.DeleteRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if q.Insert("") {
		t.Fatal("expected empty insert to fail")
	}
}

func TestQueryCursorNavigation(t *testing.T) {
	var q Query
	q.Set("one two", len("one two"))

	if !q.MoveWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if q.Cursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", q.Cursor)
	}
	if !q.MoveWordForward() {
		t.Fatal("expected word forward movement")
	}
	if q.Cursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", q.Cursor)
	}
	if !q.MoveRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if q.Cursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", q.Cursor)
	}
	if !q.MoveRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if q.MoveRuneForward() {
		t.Fatal("expected no movement past end")
	}
	if !q.MoveStart() {
		t.Fatal("expected move to start")
	}
	if q.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", q.Cursor)
	}
	if !q.MoveEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestQuerySetClampsAndClear(t *testing.T) {
	var q Query
	q.Set("héllo", 99)
	if q.Cursor != 5 {
		t.Fatalf("expected cursor clamped to rune length, got %d", q.Cursor)
	}
	q.Set("héllo", -3)
	if q.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", q.Cursor)
	}
	if !q.Clear() || q.Text != "" {
		t.Fatalf("expected clear to empty the query")
	}
	if q.Clear() {
		t.Fatal("expected second clear to report no change")
	}
}
