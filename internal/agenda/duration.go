package agenda

import (
	"fmt"
	"math"
	"time"
)

// Duration is a non-negative count of whole seconds until (or between)
// calendar events. It is deliberately not a time.Duration: status-bar output
// never shows sub-minute precision, and the minute/hour views below follow
// the rendering rules of the bar text.
type Duration struct {
	seconds int64
}

// FromSeconds creates a Duration from a raw second count.
// Negative counts clamp to zero.
func FromSeconds(seconds int64) Duration {
	if seconds < 0 {
		seconds = 0
	}
	return Duration{seconds: seconds}
}

// FromSpan creates a Duration from a time span, keeping the whole-second
// component. Negative spans clamp to zero so that an event whose start
// slipped into the past between fetch and render shows "0m" rather than a
// negative countdown.
func FromSpan(span time.Duration) Duration {
	return FromSeconds(int64(span / time.Second))
}

// Between creates a Duration for the span from one instant to another.
func Between(from, to time.Time) Duration {
	return FromSpan(to.Sub(from))
}

// Seconds returns the total second count.
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Minutes returns the fractional minutes within the current hour.
func (d Duration) Minutes() float64 {
	return math.Mod(float64(d.seconds)/60, 60)
}

// MinutesFull returns the total fractional minutes.
func (d Duration) MinutesFull() float64 {
	return float64(d.seconds) / 60
}

// HoursFull returns the total fractional hours.
func (d Duration) HoursFull() float64 {
	return d.MinutesFull() / 60
}

// String renders the duration as "<H>h <M>m" when it spans at least an hour,
// otherwise "<M>m". Components are truncated, never rounded; seconds are not
// shown.
func (d Duration) String() string {
	if d.HoursFull() >= 1 {
		return fmt.Sprintf("%dh %dm", int(d.HoursFull()), int(d.Minutes()))
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
