package schedule

import (
	"testing"
	"time"

	"github.com/brettvs/showbill/internal/models"
)

func TestParseStartTime(t *testing.T) {
	got, err := ParseStartTime("2035-04-01 20:00:00")
	if err != nil {
		t.Fatalf("parse valid start time: %v", err)
	}
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStartTimeRejectsOtherPatterns(t *testing.T) {
	for _, s := range []string{
		"",
		"2035-04-01",
		"2035-04-01T20:00:00Z",
		"04/01/2035 20:00:00",
		"not a time",
	} {
		if _, err := ParseStartTime(s); err == nil {
			t.Errorf("ParseStartTime(%q) accepted a malformed value", s)
		}
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	shows := []models.Show{
		{ID: 1, StartTime: "2020-01-01 19:30:00"},
		{ID: 2, StartTime: "2025-06-15 11:59:59"},
		{ID: 3, StartTime: "2025-06-15 12:00:01"},
		{ID: 4, StartTime: "2035-04-01 20:00:00"},
	}

	past, upcoming, skipped := Partition(shows, now)
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(past) != 2 || past[0].ID != 1 || past[1].ID != 2 {
		t.Errorf("past = %+v, want shows 1 and 2", past)
	}
	if len(upcoming) != 2 || upcoming[0].ID != 3 || upcoming[1].ID != 4 {
		t.Errorf("upcoming = %+v, want shows 3 and 4", upcoming)
	}
}

func TestPartitionExactNowInNeitherBucket(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	shows := []models.Show{{ID: 1, StartTime: "2025-06-15 12:00:00"}}

	past, upcoming, skipped := Partition(shows, now)
	if len(past) != 0 || len(upcoming) != 0 {
		t.Errorf("show starting exactly at now landed in a bucket: past=%v upcoming=%v", past, upcoming)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestPartitionSkipsMalformedStartTimes(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	shows := []models.Show{
		{ID: 1, StartTime: "garbage"},
		{ID: 2, StartTime: "2020-01-01 19:30:00"},
		{ID: 3, StartTime: "2035-04-01T20:00:00Z"},
	}

	past, upcoming, skipped := Partition(shows, now)
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	if len(past) != 1 || past[0].ID != 2 {
		t.Errorf("past = %+v, want only show 2", past)
	}
	if len(upcoming) != 0 {
		t.Errorf("upcoming = %+v, want empty", upcoming)
	}
}
