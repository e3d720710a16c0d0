package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

func drain(s *Stream) []domain.Impression {
	var out []domain.Impression
	for {
		imp, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, imp)
	}
}

func TestNewStreamRejectsBadInput(t *testing.T) {
	_, err := NewStream(0, 900, ScheduleLinear, 1)
	require.ErrorIs(t, err, ErrInvalidViews)

	_, err = NewStream(-5, 900, ScheduleLinear, 1)
	require.ErrorIs(t, err, ErrInvalidViews)

	_, err = NewStream(10, 0, ScheduleLinear, 1)
	require.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = NewStream(10, 900, Schedule("bogus"), 1)
	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestStreamOrderingInvariants(t *testing.T) {
	for _, schedule := range []Schedule{ScheduleLinear, ScheduleUniform} {
		s, err := NewStream(200, 900, schedule, 42)
		require.NoError(t, err)

		imps := drain(s)
		require.Len(t, imps, 200)

		for i, imp := range imps {
			require.Equal(t, i, imp.Index, "indices must be strictly increasing")
			require.GreaterOrEqual(t, imp.Countdown, 0.0)
			require.LessOrEqual(t, imp.Countdown, 900.0)
			if i > 0 {
				require.LessOrEqual(t, imp.Countdown, imps[i-1].Countdown,
					"countdown must never increase (schedule=%s, i=%d)", schedule, i)
			}
		}
	}
}

func TestStreamLinearEndpoints(t *testing.T) {
	s, err := NewStream(10, 900, ScheduleLinear, 0)
	require.NoError(t, err)

	imps := drain(s)
	require.Equal(t, 900.0, imps[0].Countdown)
	require.Equal(t, 0.0, imps[len(imps)-1].Countdown)
}

func TestStreamSingleView(t *testing.T) {
	s, err := NewStream(1, 900, ScheduleLinear, 0)
	require.NoError(t, err)

	imps := drain(s)
	require.Len(t, imps, 1)
	require.Equal(t, 900.0, imps[0].Countdown)
}

func TestStreamResetReplaysIdenticalSequence(t *testing.T) {
	s, err := NewStream(100, 900, ScheduleUniform, 7)
	require.NoError(t, err)

	first := drain(s)
	s.Reset()
	second := drain(s)

	require.Equal(t, first, second)
}

func TestStreamSameSeedSameSequence(t *testing.T) {
	a, err := NewStream(50, 900, ScheduleUniform, 99)
	require.NoError(t, err)
	b, err := NewStream(50, 900, ScheduleUniform, 99)
	require.NoError(t, err)

	require.Equal(t, drain(a), drain(b))
}
