// Package schedule derives past/upcoming show buckets from stored start
// times. It is pure: callers supply the shows and the reference instant,
// and no database access happens here.
package schedule

import (
	"fmt"
	"time"

	"github.com/brettvs/showbill/internal/models"
)

// StartTimeLayout is the fixed pattern every stored start_time must match.
const StartTimeLayout = "2006-01-02 15:04:05"

// ParseStartTime parses a start time under the fixed pattern. Naive local
// time, no timezone.
func ParseStartTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(StartTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("start time %q does not match %s: %w", s, "YYYY-MM-DD HH:MM:SS", err)
	}
	return t, nil
}

// Partition splits shows into those strictly before now and those strictly
// after now. A show starting exactly at now lands in neither bucket. Shows
// whose start_time fails to parse are skipped and counted, so a single bad
// row never makes a detail page unrenderable.
func Partition(shows []models.Show, now time.Time) (past, upcoming []models.Show, skipped int) {
	for _, show := range shows {
		start, err := ParseStartTime(show.StartTime)
		if err != nil {
			skipped++
			continue
		}
		switch {
		case start.Before(now):
			past = append(past, show)
		case start.After(now):
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming, skipped
}
