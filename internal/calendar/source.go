package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/meetingbar/internal/agenda"
)

// API is the subset of the Calendar client the event source needs. Tests
// substitute a fake; production code passes *Client.
type API interface {
	ListCalendars(ctx context.Context) ([]CalendarInfo, error)
	ListUpcoming(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error)
}

// Options tune event selection.
type Options struct {
	// Window is how far ahead events are fetched. Defaults to 24h.
	Window time.Duration

	// MaxResults caps the events fetched per calendar. Defaults to 10.
	MaxResults int64

	// StrictNames turns configured calendar names with no matching provider
	// calendar into an error instead of silently ignoring them.
	StrictNames bool

	// AllowPartial isolates per-calendar fetch failures: failed calendars are
	// logged and skipped, survivors are still returned. The default is
	// fail-fast for the whole cycle.
	AllowPartial bool

	// ForceUTC ignores provider-supplied event timezones and evaluates
	// everything in UTC.
	ForceUTC bool
}

const (
	defaultWindow     = 24 * time.Hour
	defaultMaxResults = 10
)

// Source selects the upcoming events of a set of named calendars: timed
// events only, strictly in the future, tagged with their calendar's color,
// ordered by start across calendars.
type Source struct {
	api  API
	opts Options
	now  func() time.Time
}

// NewSource creates a Source over the given provider API.
func NewSource(api API, opts Options) *Source {
	if opts.Window <= 0 {
		opts.Window = defaultWindow
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultMaxResults
	}
	return &Source{
		api:  api,
		opts: opts,
		now:  time.Now,
	}
}

// NextEvents fetches, filters, and time-sorts the upcoming events of all
// calendars whose display name is in calendarNames. Names are matched
// exactly; names with no matching calendar are ignored unless StrictNames is
// set. Provider failures propagate unless AllowPartial is set.
func (s *Source) NextEvents(ctx context.Context, calendarNames []string) ([]agenda.Event, error) {
	calendars, err := s.api.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	matched, missing := matchCalendars(calendars, calendarNames)
	if s.opts.StrictNames && len(missing) > 0 {
		return nil, fmt.Errorf("no calendar named: %s", strings.Join(missing, ", "))
	}

	now := s.now()
	var all []agenda.Event
	for _, cal := range matched {
		items, err := s.api.ListUpcoming(ctx, cal.ID, now, now.Add(s.opts.Window), s.opts.MaxResults)
		if err != nil {
			if s.opts.AllowPartial {
				slog.Warn("skipping calendar after fetch failure",
					"calendar", cal.Summary, "error", err)
				continue
			}
			return nil, fmt.Errorf("calendar %s: %w", cal.Summary, err)
		}

		events, err := ParseEvents(items, cal.Color, now, s.opts.ForceUTC)
		if err != nil {
			if s.opts.AllowPartial {
				slog.Warn("skipping calendar after parse failure",
					"calendar", cal.Summary, "error", err)
				continue
			}
			return nil, fmt.Errorf("calendar %s: %w", cal.Summary, err)
		}
		all = append(all, events...)
	}

	// Stable: events fetched earlier win ties.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})

	return all, nil
}

// matchCalendars keeps calendars whose display name is in names (exact
// match) and reports configured names that matched nothing.
func matchCalendars(calendars []CalendarInfo, names []string) (matched []CalendarInfo, missing []string) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = false
	}

	for _, cal := range calendars {
		if _, ok := wanted[cal.Summary]; ok {
			wanted[cal.Summary] = true
			matched = append(matched, cal)
		}
	}

	for _, name := range names {
		if !wanted[name] {
			missing = append(missing, name)
		}
	}
	return matched, missing
}

// ParseEvents converts raw provider events into agenda events, dropping
// all-day events and events whose start is not strictly after now in the
// event's own zone. The provider re-checks less strictly than we do; this
// guards against clock skew and zone-conversion edges.
func ParseEvents(items []*calendar.Event, color string, now time.Time, forceUTC bool) ([]agenda.Event, error) {
	var events []agenda.Event

	for _, item := range items {
		if item == nil || item.Start == nil {
			continue
		}

		// All-day events carry a date-only start.
		if item.Start.Date != "" || item.Start.DateTime == "" {
			continue
		}

		zone := resolveZone(item.Start.TimeZone, forceUTC)

		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, fmt.Errorf("event %q: bad start time %q: %w", item.Summary, item.Start.DateTime, err)
		}
		start = start.In(zone)

		if !start.After(now.In(zone)) {
			continue
		}

		if item.End == nil || item.End.DateTime == "" {
			return nil, fmt.Errorf("event %q: missing end time", item.Summary)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return nil, fmt.Errorf("event %q: bad end time %q: %w", item.Summary, item.End.DateTime, err)
		}

		events = append(events, agenda.Event{
			Title: item.Summary,
			Zone:  zone,
			Start: start,
			End:   end.In(zone),
			Color: color,
		})
	}

	return events, nil
}

// resolveZone loads the provider-supplied zone, falling back to UTC when the
// event carries none or the name is unknown to the host's zone database.
func resolveZone(name string, forceUTC bool) *time.Location {
	if forceUTC || name == "" {
		return time.UTC
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		slog.Debug("unknown event timezone, falling back to UTC", "zone", name)
		return time.UTC
	}
	return zone
}
