package availability

import (
	"context"
	"math/rand"
	"time"
)

// Static serves a fixed label list, optionally thinned at random. It stands
// in for a real calendar backend during development and in tests; production
// wiring uses MongoSource.
type Static struct {
	Labels []string
	Jitter bool          // randomly drop labels to mimic a partly booked day
	Delay  time.Duration // simulated resolution latency
}

// NewStatic returns a Static source over the default consultation grid.
func NewStatic() *Static {
	return &Static{Labels: DefaultSlotLabels}
}

func (s *Static) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := make([]string, 0, len(s.Labels))
	for _, label := range s.Labels {
		if s.Jitter && rand.Float64() < 0.3 {
			continue
		}
		out = append(out, label)
	}
	return out, nil
}
