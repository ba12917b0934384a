// Package gate decides whether interactive tutoring is currently permitted
// based on the guardian-configured daily time window.
package gate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a daily tutor-time interval in local wall-clock time.
// Both bounds are inclusive. A window whose start is later than its end
// never activates; windows crossing midnight are not supported.
type Window struct {
	Start string // HH:MM, 24-hour
	End   string // HH:MM, 24-hour
}

// Active reports whether now falls inside the window. Malformed bounds
// make the window inactive rather than failing open.
func (w Window) Active(now time.Time) bool {
	start, err := parseMinutes(w.Start)
	if err != nil {
		return false
	}
	end, err := parseMinutes(w.End)
	if err != nil {
		return false
	}

	current := now.Hour()*60 + now.Minute()
	return current >= start && current <= end
}

// Validate checks that both bounds are well-formed HH:MM times
func (w Window) Validate() error {
	if _, err := parseMinutes(w.Start); err != nil {
		return fmt.Errorf("invalid start time %q: %w", w.Start, err)
	}
	if _, err := parseMinutes(w.End); err != nil {
		return fmt.Errorf("invalid end time %q: %w", w.End, err)
	}
	return nil
}

// parseMinutes converts an HH:MM string to minutes since midnight
func parseMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour: %w", err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minute: %w", err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}

	return hour*60 + minute, nil
}
