package google

// CalendarReadonlyScope grants read-only access to calendars and events,
// which is all meetingbar ever needs. If this scope list changes, stored
// tokens must be deleted and re-issued.
const CalendarReadonlyScope = "https://www.googleapis.com/auth/calendar.readonly"

// DefaultOAuthScopes are the Google OAuth scopes requested during
// authorization.
var DefaultOAuthScopes = []string{
	CalendarReadonlyScope,
}
