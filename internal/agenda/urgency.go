package agenda

// Tier is the urgency classification of the time remaining until an event.
type Tier int

const (
	// TierNone means the event is far enough away for neutral rendering.
	TierNone Tier = iota
	// TierSoon means the event starts within the soon threshold.
	TierSoon
	// TierUrgent means the event starts within the urgent threshold.
	TierUrgent
)

// Default urgency thresholds and colors, matching the classic red/yellow
// status-bar convention.
const (
	DefaultUrgentMinutes = 20
	DefaultSoonMinutes   = 120
	DefaultUrgentColor   = "#FF0000"
	DefaultSoonColor     = "#FFFF00"
)

// UrgencyPolicy maps a remaining Duration to an urgency tier and display
// color. The zero value is not useful; use NewUrgencyPolicy.
type UrgencyPolicy struct {
	urgentMinutes float64
	soonMinutes   float64
	urgentColor   string
	soonColor     string
}

// NewUrgencyPolicy builds a policy with the given thresholds (in minutes)
// and colors. Non-positive thresholds fall back to the defaults.
func NewUrgencyPolicy(urgentMinutes, soonMinutes float64, urgentColor, soonColor string) UrgencyPolicy {
	if urgentMinutes <= 0 {
		urgentMinutes = DefaultUrgentMinutes
	}
	if soonMinutes <= urgentMinutes {
		soonMinutes = DefaultSoonMinutes
	}
	if urgentColor == "" {
		urgentColor = DefaultUrgentColor
	}
	if soonColor == "" {
		soonColor = DefaultSoonColor
	}
	return UrgencyPolicy{
		urgentMinutes: urgentMinutes,
		soonMinutes:   soonMinutes,
		urgentColor:   urgentColor,
		soonColor:     soonColor,
	}
}

// DefaultUrgencyPolicy returns the policy with stock thresholds and colors.
func DefaultUrgencyPolicy() UrgencyPolicy {
	return NewUrgencyPolicy(DefaultUrgentMinutes, DefaultSoonMinutes, DefaultUrgentColor, DefaultSoonColor)
}

// Classify returns the urgency tier for the remaining time. Boundaries are
// exclusive on the upper comparison: exactly 20m is soon, exactly 120m is
// none.
func (p UrgencyPolicy) Classify(remaining Duration) Tier {
	switch {
	case remaining.MinutesFull() < p.urgentMinutes:
		return TierUrgent
	case remaining.MinutesFull() < p.soonMinutes:
		return TierSoon
	default:
		return TierNone
	}
}

// Color returns the display color for the remaining time, or "" for neutral
// rendering.
func (p UrgencyPolicy) Color(remaining Duration) string {
	switch p.Classify(remaining) {
	case TierUrgent:
		return p.urgentColor
	case TierSoon:
		return p.soonColor
	default:
		return ""
	}
}
