// Package agenda holds the pure domain types of meetingbar: the Duration
// value type used for countdown rendering, the Event occurrence record, and
// the UrgencyPolicy that maps remaining time to display colors.
//
// Nothing in this package performs I/O; everything is deterministic given an
// explicit "now", which keeps the selection and formatting rules testable
// without a calendar provider.
package agenda
