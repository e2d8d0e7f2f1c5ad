package seed

import (
	"math/rand"
	"testing"
	"time"
)

func TestRecentTimeWithinWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		ts := RecentTime(now, rnd)
		if ts.After(now) {
			t.Fatalf("timestamp in the future: %s", ts)
		}
		if !ts.After(now.Add(-RecentWindow)) {
			t.Fatalf("timestamp too old: %s", ts)
		}
	}
}

func TestStamperDefaults(t *testing.T) {
	s := newStamper(nil, nil)
	before := time.Now()
	ts := s.next()
	if ts.After(time.Now()) || ts.Before(before.Add(-RecentWindow)) {
		t.Fatalf("timestamp out of range: %s", ts)
	}
}
