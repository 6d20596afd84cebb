// Package ui contains the Bubble Tea program that hosts the multi-select
// picker. The Model owns a multiselect.Machine and translates terminal input
// into its closed command set; everything the picker shows is read back from
// the machine's current state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, submit confirmation, backend updates).
//   - Navigation, toggle and submit keys go through the command bus in
//     internal/ui/command, which traces each dispatch. Submit yields a
//     command.SubmittedMsg that ends the program.
//   - Printable keys edit the filter query (internal/ui/state.Query). Space
//     and tab are reserved for toggling.
//
// Option changes:
//   - Editing the filter narrows the loaded options with
//     internal/ui/state.FilterOptions and hands the result to
//     Machine.SetOptions, which resets the machine only when the narrowed list
//     differs from the last one it saw.
//   - When a backend.Watcher is attached, re-fetched option lists replace the
//     loaded options and go through the same filter and reset path.
//   - Both paths carry the current selection over as the new defaults so
//     narrowing the list never drops choices.
//
// When the picker is disabled only the quit keys are honoured and the focus
// pointer is hidden.
package ui
