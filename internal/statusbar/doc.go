// Package statusbar defines the wire format consumed by the status-bar
// host: a block of either plain text or colored composite segments, plus a
// cache_timeout hint for the host's refresh scheduling.
package statusbar
