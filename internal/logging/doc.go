// Package logging configures the process-wide slog logger. Log output is
// kept on stderr because stdout carries the status-bar protocol.
package logging
