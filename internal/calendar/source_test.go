package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

type fakeAPI struct {
	calendars []CalendarInfo
	events    map[string][]*calendar.Event
	errs      map[string]error
	listErr   error
}

func (f *fakeAPI) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.calendars, nil
}

func (f *fakeAPI) ListUpcoming(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error) {
	if err := f.errs[calendarID]; err != nil {
		return nil, err
	}
	return f.events[calendarID], nil
}

func timedEvent(summary string, start, end time.Time, zone string) *calendar.Event {
	return &calendar.Event{
		Summary: summary,
		Start:   &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: zone},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: zone},
	}
}

func allDayEvent(summary string, day time.Time) *calendar.Event {
	return &calendar.Event{
		Summary: summary,
		Start:   &calendar.EventDateTime{Date: day.Format("2006-01-02")},
		End:     &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format("2006-01-02")},
	}
}

func newTestSource(api API, opts Options, now time.Time) *Source {
	s := NewSource(api, opts)
	s.now = func() time.Time { return now }
	return s
}

func TestNextEventsFiltersAndSorts(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{
			{ID: "work-id", Summary: "Work", Color: "#111111"},
			{ID: "life-id", Summary: "Life", Color: "#222222"},
			{ID: "spam-id", Summary: "Holidays", Color: "#333333"},
		},
		events: map[string][]*calendar.Event{
			"work-id": {
				timedEvent("Standup", now.Add(90*time.Minute), now.Add(105*time.Minute), ""),
				timedEvent("Retro", now.Add(5*time.Hour), now.Add(6*time.Hour), ""),
			},
			"life-id": {
				timedEvent("Dentist", now.Add(30*time.Minute), now.Add(time.Hour), ""),
			},
			"spam-id": {
				timedEvent("Ignored", now.Add(time.Minute), now.Add(time.Hour), ""),
			},
		},
	}

	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work", "Life"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("NextEvents() returned %d events, expected 3", len(events))
	}

	titles := []string{events[0].Title, events[1].Title, events[2].Title}
	expected := []string{"Dentist", "Standup", "Retro"}
	for i := range expected {
		if titles[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", titles, expected)
		}
	}

	for i := 1; i < len(events); i++ {
		if events[i].Start.Before(events[i-1].Start) {
			t.Errorf("events not sorted: %q before %q", events[i].Title, events[i-1].Title)
		}
	}

	if events[0].Color != "#222222" {
		t.Errorf("Dentist color = %q, expected Life calendar color", events[0].Color)
	}
	if events[1].Color != "#111111" {
		t.Errorf("Standup color = %q, expected Work calendar color", events[1].Color)
	}
}

func TestNextEventsSkipsAllDayEvents(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{{ID: "work-id", Summary: "Work"}},
		events: map[string][]*calendar.Event{
			"work-id": {
				allDayEvent("Company Holiday", now),
				timedEvent("Standup", now.Add(time.Hour), now.Add(2*time.Hour), ""),
			},
		},
	}

	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}

	if len(events) != 1 || events[0].Title != "Standup" {
		t.Errorf("expected only the timed event, got %v", events)
	}
}

func TestNextEventsSkipsStartedEvents(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{{ID: "work-id", Summary: "Work"}},
		events: map[string][]*calendar.Event{
			"work-id": {
				// Provider window filters can leak already-running events
				// under clock skew; the source must re-check.
				timedEvent("Running", now.Add(-10*time.Minute), now.Add(20*time.Minute), ""),
				timedEvent("Starting now", now, now.Add(30*time.Minute), ""),
				timedEvent("Future", now.Add(time.Minute), now.Add(31*time.Minute), ""),
			},
		},
	}

	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}

	if len(events) != 1 || events[0].Title != "Future" {
		t.Errorf("expected only the strictly-future event, got %v", events)
	}
}

func TestNextEventsUnmatchedNamesIgnored(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{{ID: "work-id", Summary: "Work"}},
		events:    map[string][]*calendar.Event{},
	}

	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work", "Nonexistent"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestNextEventsStrictNames(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{{ID: "work-id", Summary: "Work"}},
	}

	source := newTestSource(api, Options{StrictNames: true}, now)
	_, err := source.NextEvents(context.Background(), []string{"Work", "Nonexistent"})
	if err == nil {
		t.Fatal("expected error for unmatched name in strict mode")
	}
	if !strings.Contains(err.Error(), "Nonexistent") {
		t.Errorf("error %q should name the missing calendar", err)
	}
}

func TestNextEventsExactNameMatch(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{{ID: "work-id", Summary: "work"}},
		events: map[string][]*calendar.Event{
			"work-id": {timedEvent("Standup", now.Add(time.Hour), now.Add(2*time.Hour), "")},
		},
	}

	// "Work" must not match the calendar named "work".
	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("case-differing name matched, got %v", events)
	}
}

func TestNextEventsFailFast(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	boom := errors.New("rate limited")

	api := &fakeAPI{
		calendars: []CalendarInfo{
			{ID: "work-id", Summary: "Work"},
			{ID: "life-id", Summary: "Life"},
		},
		events: map[string][]*calendar.Event{
			"work-id": {timedEvent("Standup", now.Add(time.Hour), now.Add(2*time.Hour), "")},
		},
		errs: map[string]error{"life-id": boom},
	}

	source := newTestSource(api, Options{}, now)
	_, err := source.NextEvents(context.Background(), []string{"Work", "Life"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch failure to propagate, got %v", err)
	}
}

func TestNextEventsAllowPartial(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	api := &fakeAPI{
		calendars: []CalendarInfo{
			{ID: "work-id", Summary: "Work"},
			{ID: "life-id", Summary: "Life"},
		},
		events: map[string][]*calendar.Event{
			"work-id": {timedEvent("Standup", now.Add(time.Hour), now.Add(2*time.Hour), "")},
		},
		errs: map[string]error{"life-id": errors.New("rate limited")},
	}

	source := newTestSource(api, Options{AllowPartial: true}, now)
	events, err := source.NextEvents(context.Background(), []string{"Work", "Life"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Standup" {
		t.Errorf("expected survivors from the healthy calendar, got %v", events)
	}
}

func TestNextEventsListCalendarsFailure(t *testing.T) {
	boom := errors.New("auth expired")
	api := &fakeAPI{listErr: boom}

	source := newTestSource(api, Options{}, time.Now())
	_, err := source.NextEvents(context.Background(), []string{"Work"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected calendar list failure to propagate, got %v", err)
	}
}

func TestParseEventsZoneResolution(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("failed to load zone: %v", err)
	}

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)
	end := now.Add(2 * time.Hour)

	tests := []struct {
		name     string
		zone     string
		forceUTC bool
		expected *time.Location
	}{
		{"provider zone", "Europe/Berlin", false, berlin},
		{"no zone defaults to UTC", "", false, time.UTC},
		{"unknown zone falls back to UTC", "Mars/Olympus_Mons", false, time.UTC},
		{"force UTC overrides provider zone", "Europe/Berlin", true, time.UTC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ParseEvents([]*calendar.Event{
				timedEvent("Standup", start, end, tt.zone),
			}, "#111111", now, tt.forceUTC)
			if err != nil {
				t.Fatalf("ParseEvents() error: %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("ParseEvents() returned %d events, expected 1", len(events))
			}
			if events[0].Zone.String() != tt.expected.String() {
				t.Errorf("zone = %v, expected %v", events[0].Zone, tt.expected)
			}
			if !events[0].Start.Equal(start) {
				t.Errorf("start instant changed during zone conversion")
			}
		})
	}
}

func TestParseEventsBadTimes(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := ParseEvents([]*calendar.Event{
		{
			Summary: "Broken",
			Start:   &calendar.EventDateTime{DateTime: "not-a-time"},
		},
	}, "", now, false)
	if err == nil {
		t.Fatal("expected error for malformed start time")
	}

	_, err = ParseEvents([]*calendar.Event{
		{
			Summary: "No end",
			Start:   &calendar.EventDateTime{DateTime: now.Add(time.Hour).Format(time.RFC3339)},
		},
	}, "", now, false)
	if err == nil {
		t.Fatal("expected error for missing end time")
	}
}

func TestParseEventsMaxTenPerCalendarIsProviderSide(t *testing.T) {
	// The per-calendar cap is passed through to the provider query; the
	// parser itself does not truncate.
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	var items []*calendar.Event
	for i := 0; i < 12; i++ {
		items = append(items, timedEvent("Event", now.Add(time.Duration(i+1)*time.Minute), now.Add(time.Duration(i+2)*time.Minute), ""))
	}

	events, err := ParseEvents(items, "", now, false)
	if err != nil {
		t.Fatalf("ParseEvents() error: %v", err)
	}
	if len(events) != 12 {
		t.Errorf("ParseEvents() returned %d events, expected 12", len(events))
	}
}

func TestSortStability(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)

	api := &fakeAPI{
		calendars: []CalendarInfo{
			{ID: "a-id", Summary: "A", Color: "#aaa"},
			{ID: "b-id", Summary: "B", Color: "#bbb"},
		},
		events: map[string][]*calendar.Event{
			"a-id": {timedEvent("First fetched", start, start.Add(time.Hour), "")},
			"b-id": {timedEvent("Second fetched", start, start.Add(time.Hour), "")},
		},
	}

	source := newTestSource(api, Options{}, now)
	events, err := source.NextEvents(context.Background(), []string{"A", "B"})
	if err != nil {
		t.Fatalf("NextEvents() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("NextEvents() returned %d events, expected 2", len(events))
	}
	if events[0].Title != "First fetched" {
		t.Errorf("tie broken against fetch order: %q first", events[0].Title)
	}
}
