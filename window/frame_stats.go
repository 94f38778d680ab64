package window

import (
	"log/slog"
	"time"

	"github.com/loov/hrtime"
)

// FrameStats measures the time between presented frames and logs a summary
// at debug level every Every frames. It never delays the loop.
type FrameStats struct {
	Logger *slog.Logger
	Every  int

	now   func() time.Duration
	last  time.Duration
	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

func NewFrameStats(logger *slog.Logger, every int) *FrameStats {
	if every <= 0 {
		every = 600
	}
	return &FrameStats{
		Logger: logger,
		Every:  every,
		now:    hrtime.Now,
	}
}

// Frame records that a frame has been presented.
func (s *FrameStats) Frame() {
	now := s.now()
	if s.last == 0 {
		s.last = now
		return
	}

	d := now - s.last
	s.last = now

	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
	s.count++

	if s.count >= s.Every {
		s.Flush()
	}
}

// Flush logs and resets the frames measured since the last summary.
func (s *FrameStats) Flush() {
	if s.count == 0 {
		return
	}

	avg := s.total / time.Duration(s.count)
	if s.Logger != nil {
		s.Logger.Debug("frame times",
			"frames", s.count,
			"avg", avg,
			"min", s.min,
			"max", s.max,
			"fps", float64(time.Second)/float64(avg),
		)
	}

	s.count = 0
	s.total = 0
	s.min = 0
	s.max = 0
}
