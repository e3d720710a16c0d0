package simulation

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// Schedule decides how impression countdowns are laid out over the horizon.
type Schedule string

const (
	// ScheduleLinear spaces impressions evenly from the full horizon down
	// to zero.
	ScheduleLinear Schedule = "linear"
	// ScheduleUniform draws arrival times uniformly over the horizon and
	// sorts them, like real users trickling in.
	ScheduleUniform Schedule = "uniform"
)

var ErrInvalidSchedule = errors.New("unknown countdown schedule")

// Stream is a finite, ordered, restartable sequence of impressions.
// Indices are strictly increasing and countdowns never increase.
// The stream has no side effects; its randomness is fixed at construction
// so Reset replays the exact same sequence.
type Stream struct {
	views        int
	maxCountdown float64

	pos        int
	countdowns []float64
}

func NewStream(views int, maxCountdown float64, schedule Schedule, seed int64) (*Stream, error) {
	if views <= 0 {
		return nil, ErrInvalidViews
	}
	if maxCountdown <= 0 {
		return nil, ErrInvalidHorizon
	}

	countdowns := make([]float64, views)
	switch schedule {
	case ScheduleLinear, "":
		if views == 1 {
			countdowns[0] = maxCountdown
			break
		}
		step := maxCountdown / float64(views-1)
		for i := range countdowns {
			countdowns[i] = maxCountdown - float64(i)*step
		}
	case ScheduleUniform:
		rng := rand.New(rand.NewSource(seed))
		arrivals := make([]float64, views)
		for i := range arrivals {
			arrivals[i] = rng.Float64() * maxCountdown
		}
		sort.Float64s(arrivals)
		for i, t := range arrivals {
			countdowns[i] = maxCountdown - t
		}
	default:
		return nil, ErrInvalidSchedule
	}

	return &Stream{
		views:        views,
		maxCountdown: maxCountdown,
		countdowns:   countdowns,
	}, nil
}

// Next yields the next impression, or ok=false once the stream is drained.
func (s *Stream) Next() (domain.Impression, bool) {
	if s.pos >= s.views {
		return domain.Impression{}, false
	}
	imp := domain.Impression{
		Index:     s.pos,
		Countdown: s.countdowns[s.pos],
	}
	s.pos++
	return imp, true
}

// Reset rewinds the stream to replay the identical sequence.
func (s *Stream) Reset() {
	s.pos = 0
}

func (s *Stream) Views() int {
	return s.views
}

func (s *Stream) MaxCountdown() float64 {
	return s.maxCountdown
}
