// Package cmd implements the meetingbar command line interface.
//
// The default command is "status", which performs one render cycle and
// prints a JSON block for the status-bar host. "watch" keeps rendering on a
// timer, "auth" runs the OAuth bootstrap, and "calendars" lists the
// calendars available to the configured account.
package cmd
