package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts "HH:MM" (or "H:MM") into minutes from midnight.
func ParseClock(value string) (int, error) {
	hours, minutes, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", value)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", value)
	}
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
