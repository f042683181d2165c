package calendar

import (
	calendar "google.golang.org/api/calendar/v3"
)

// CalendarInfo represents one entry of the account's calendar list. Entries
// are fetched fresh each render cycle and never persisted.
type CalendarInfo struct {
	ID       string
	Summary  string
	Color    string // background color of the calendar in the provider UI
	TimeZone string
	Primary  bool
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:       entry.Id,
		Summary:  entry.Summary,
		Color:    entry.BackgroundColor,
		TimeZone: entry.TimeZone,
		Primary:  entry.Primary,
	}
}
