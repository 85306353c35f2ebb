package time

import (
	"testing"
	"time"
)

func TestStartOf(t *testing.T) {
	loc := time.FixedZone("X", 2*3600)
	ts := time.Date(2024, time.March, 15, 13, 45, 10, 99, loc)

	if got := StartOfDay(ts); !got.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, loc)) {
		t.Fatalf("StartOfDay = %v", got)
	}
	if got := StartOfMonth(ts); !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("StartOfMonth = %v", got)
	}
	if got := StartOfYear(ts); !got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("StartOfYear = %v", got)
	}
}

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr lost value")
	}
}
