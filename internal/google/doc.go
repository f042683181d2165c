// Package google handles OAuth2 authentication against the Google Calendar
// API: the OAuth configuration, the file-backed token store under the user
// cache directory, and the TokenProvider abstraction consumed by the
// calendar client.
//
// Token refresh and persistence live entirely in this package; the rest of
// the program treats credentials as an external precondition.
package google
