package seed

import (
	"math/rand"
	"time"
)

// RecentWindow bounds how far back a createdAt stamp may fall.
const RecentWindow = 24 * time.Hour

// RecentTime returns a random instant in (now-RecentWindow, now].
func RecentTime(now time.Time, rnd *rand.Rand) time.Time {
	return now.Add(-time.Duration(rnd.Int63n(int64(RecentWindow)))).UTC()
}

type stamper struct {
	now func() time.Time
	rnd *rand.Rand
}

func newStamper(now func() time.Time, rnd *rand.Rand) *stamper {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &stamper{now: now, rnd: rnd}
}

func (s *stamper) next() time.Time {
	return RecentTime(s.now(), s.rnd)
}
