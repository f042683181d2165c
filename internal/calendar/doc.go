// Package calendar talks to the Google Calendar API and turns its raw
// responses into agenda events.
//
// Client is a thin wrapper over google.golang.org/api/calendar/v3 exposing
// the two read operations meetingbar consumes: the account's calendar list
// and the upcoming events of one calendar. Source layers the selection rules
// on top: exact calendar-name matching, a 24-hour fetch window, all-day and
// already-started filtering, per-event timezone resolution, calendar color
// tagging, and a stable cross-calendar sort by start time.
package calendar
