// Package ui provides the Bubble Tea dashboard for Pulse.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns the theme, the navigation menu, the
// help overlay and one component per enabled pane:
//
//   - overview: animated KPI counters and the mounted charts
//   - contacts: searchable, sortable, paginated contact table
//   - tasks: to-do list with an add form
//   - pipeline: deal board with keyboard drag and drop
//   - activity: live feed with a periodic synthetic insert
//
// Panes not listed in the config's panels are never constructed; their
// initializers are no-ops on a nil component.
//
// # Rendering
//
// Each pane projects its state into plain row values (contactRows,
// taskRows, pipelineColumns, activityRows) and then draws them with
// lipgloss. The projections carry no styling and are what the tests assert
// on.
//
// # Timers
//
// The counter animation and the activity feed are driven by tea.Tick. Every
// tick message carries the generation of the init call that scheduled it;
// re-initializing bumps the generation so stale ticks are dropped and only
// one timer per pane stays live.
//
// # Theme
//
// T toggles between the light and dark themes. The choice is written to
// the preference store under the "theme" key and the charts are remounted
// with the new palette, destroying the previous handles.
//
// # Key Bindings
//
//   - tab/shift+tab: Next/previous view
//   - m: Navigation menu (enter to jump, esc to close)
//   - ?: Help
//   - T: Toggle light/dark theme
//   - q or ctrl+c: Quit
//   - Contacts: / search, 1-5 sort, [ ] page
//   - Tasks: a add, space toggle, x/d delete, j/k move
//   - Pipeline: space pick up/drop, arrows move, esc cancel
package ui
