package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/entities"
)

const (
	DefaultRetention = 30 * 24 * time.Hour
	DefaultListLimit = 50
)

// Journal - локальный журнал попыток назначения, отправленных через этот сервис.
// Источник истины по назначениям остается на бэкенде.
type Journal struct {
	repository Repository
	txManager  TxManager
	retention  time.Duration
}

func New(repository Repository, txManager TxManager, retention time.Duration) *Journal {
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &Journal{
		repository: repository,
		txManager:  txManager,
		retention:  retention,
	}
}

// Record сохраняет попытку. Принятая попытка вытесняет прежние принятые по тому же заказу.
func (j *Journal) Record(ctx context.Context, submission entities.Submission) (*entities.Submission, error) {
	if strings.TrimSpace(submission.OrderID) == "" || strings.TrimSpace(submission.RequestID) == "" {
		return nil, ErrInvalidSubmission
	}
	switch submission.Outcome {
	case entities.SubmissionAccepted, entities.SubmissionRejected:
	default:
		return nil, fmt.Errorf("%w: unknown outcome %q", ErrInvalidSubmission, submission.Outcome)
	}

	var recorded *entities.Submission
	err := j.txManager.Do(ctx, func(ctx context.Context) error {
		if submission.Outcome == entities.SubmissionAccepted {
			if _, err := j.repository.MarkSuperseded(ctx, submission.OrderID); err != nil {
				return fmt.Errorf("mark superseded: %w", err)
			}
		}

		created, err := j.repository.Create(ctx, submission)
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}

		recorded = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return recorded, nil
}

func (j *Journal) ListByOrder(ctx context.Context, orderID string) ([]entities.Submission, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	submissions, err := j.repository.ListByOrder(ctx, orderID, DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return submissions, nil
}

// Cleanup удаляет записи старше окна хранения.
func (j *Journal) Cleanup(ctx context.Context) (int64, error) {
	before := time.Now().UTC().Add(-j.retention)

	deleted, err := j.repository.DeleteOlderThan(ctx, before)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return deleted, nil
}
