package status

import (
	"context"
	"time"

	"github.com/teemow/meetingbar/internal/agenda"
	"github.com/teemow/meetingbar/internal/statusbar"
)

// NoUpcomingEvents is shown when no tracked calendar has a relevant event.
const NoUpcomingEvents = "No upcoming events"

// Source yields the upcoming events of a set of named calendars, earliest
// first.
type Source interface {
	NextEvents(ctx context.Context, calendarNames []string) ([]agenda.Event, error)
}

// Renderer turns the next upcoming event into a status-bar block. The event
// source is injected at construction; the renderer holds no cross-cycle
// state and is driven synchronously by the host's refresh timer.
type Renderer struct {
	source       Source
	policy       agenda.UrgencyPolicy
	calendars    []string
	cacheTimeout int
	now          func() time.Time
}

// NewRenderer creates a Renderer tracking the given calendar names.
// cacheTimeout is the scheduling hint (seconds) stamped on every block.
func NewRenderer(source Source, policy agenda.UrgencyPolicy, calendars []string, cacheTimeout int) *Renderer {
	if cacheTimeout <= 0 {
		cacheTimeout = 60
	}
	return &Renderer{
		source:       source,
		policy:       policy,
		calendars:    calendars,
		cacheTimeout: cacheTimeout,
		now:          time.Now,
	}
}

// Render performs one render cycle: fetch, pick the earliest event, and
// build the output block. Provider failures propagate; the host decides how
// a failed cycle is displayed.
func (r *Renderer) Render(ctx context.Context) (statusbar.Block, error) {
	events, err := r.source.NextEvents(ctx, r.calendars)
	if err != nil {
		return statusbar.Block{}, err
	}

	block := statusbar.Block{CacheTimeout: r.cacheTimeout}
	if len(events) == 0 {
		block.FullText = NoUpcomingEvents
		return block, nil
	}

	next := events[0]
	until := next.TimeUntil(r.now())
	block.Composite = []statusbar.Segment{
		{FullText: "In " + until.String() + " ", Color: r.policy.Color(until)},
		{FullText: next.Title, Color: next.Color},
	}
	return block, nil
}
