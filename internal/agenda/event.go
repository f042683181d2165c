package agenda

import (
	"fmt"
	"time"
)

// Event is one concrete calendar occurrence, already expanded from any
// recurring series by the provider. Values are immutable after construction;
// a fresh set is built on every fetch cycle.
type Event struct {
	// Title is the event summary shown in the bar.
	Title string

	// Zone is the event's own timezone. Start and End are normalized into
	// this zone when the event is parsed.
	Zone *time.Location

	// Start is when the event begins.
	Start time.Time

	// End is when the event ends.
	End time.Time

	// Color is the background color of the calendar the event belongs to.
	Color string
}

// TimeUntil returns how long until the event starts, evaluated against now
// in the event's own zone. Already-started events yield a zero Duration.
func (e Event) TimeUntil(now time.Time) Duration {
	return Between(now.In(e.zone()), e.Start)
}

// FormatAfter renders the event relative to a chronologically preceding one
// as "<gap> > <title> (<length>)", where gap is the idle time after the
// preceding event ends and length is this event's own duration.
func (e Event) FormatAfter(preceding Event) string {
	gap := Between(preceding.End, e.Start)
	length := Between(e.Start, e.End)
	return fmt.Sprintf("%s > %s (%s)", gap, e.Title, length)
}

func (e Event) zone() *time.Location {
	if e.Zone == nil {
		return time.UTC
	}
	return e.Zone
}
