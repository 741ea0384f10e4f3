// Package ui contains the Bubble Tea program that renders the product search
// view. The Model type focuses on message orchestration, while dedicated
// helpers own text input, navigation, dialogs, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message is
//     routed through a typed handler registry so every tea.Msg is handled by a
//     focused function (key presses, mouse events, the fetch outcome, spinner
//     ticks, clipboard results).
//   - Handlers never mutate UI state directly. They translate input into
//     internal/ui/state actions and hand them to the Dispatcher, which applies
//     the pure reducer and keeps the only copy of the state snapshot.
//   - Rendering reads the snapshot plus the fetch result; presentation such as
//     which dialog is drawn is derived at View time.
//
// Fetching:
//   - Init starts the one and only fetch as a tea.Cmd through the command bus.
//     Until the fetchSettledMsg arrives the table area shows a spinner; once it
//     settles the result is terminal for the session.
//
// State ownership:
//   - internal/ui/state.State holds search text, the burger menu flag, the
//     four dialog flags, and the selected record.
//   - internal/ui/state.List holds the filtered rows, cursor, and viewport
//     offset for the table.
package ui
