// Package multiselect implements the windowed list-navigation and
// multi-selection state machine behind the picker.
//
// An Index links the options once so focus moves are O(1). State is an
// immutable value; Apply maps (State, Command) to a new State and never
// fails. Machine is the host-side owner of the current State: it serialises
// Dispatch, compares the selection before and after each toggle, and invokes
// OnChange once per real change and OnSubmit once per Submit.
package multiselect
