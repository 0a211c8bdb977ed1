package workers

import (
	"context"
	"errors"
	"time"

	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/sirupsen/logrus"
)

// SessionSweeper periodically drops expired interview sessions. Lookups
// already treat expired sessions as gone; the sweeper only reclaims memory
// for sessions nobody asks about again.
type SessionSweeper struct {
	Store    *interview.Store
	Interval time.Duration
	Logger   *logrus.Logger
}

func (s *SessionSweeper) Start(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("SessionSweeper missing dependency: Store must be set")
	}
	if s.Interval <= 0 {
		s.Interval = 5 * time.Minute
	}
	if s.Logger == nil {
		s.Logger = logrus.New()
	}

	go s.run(ctx)
	return nil
}

func (s *SessionSweeper) run(ctx context.Context) {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweepOnce()
		}
	}
}

func (s *SessionSweeper) sweepOnce() int {
	n := s.Store.Sweep()
	if n > 0 {
		st := s.Store.Stats()
		s.Logger.WithFields(logrus.Fields{
			"removed": n,
			"active":  st.Active,
		}).Info("expired interview sessions swept")
	}
	return n
}
