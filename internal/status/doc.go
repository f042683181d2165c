// Package status orchestrates the event source and the urgency policy into
// the single block the status-bar host displays.
package status
