package submission_cleanup

import (
	"context"
	"fmt"
	"time"

	"dashboard/pkg/logger"
)

type SubmissionCleanup struct {
	log      taskLogger
	journal  Journal
	interval time.Duration
}

func New(log taskLogger, journal Journal, interval time.Duration) *SubmissionCleanup {
	return &SubmissionCleanup{
		log:      log,
		journal:  journal,
		interval: interval,
	}
}

func (s *SubmissionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SubmissionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	removed, err := s.journal.Cleanup(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("journal cleanup: %w", err)
	}

	if removed > 0 {
		s.log.Info("submission journal cleanup",
			logger.NewField("removed", removed),
		)
	}
	return nil
}

func (s *SubmissionCleanup) Info() string {
	return "submission journal cleanup"
}
