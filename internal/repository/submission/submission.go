package submission

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/repository"
	"dashboard/internal/service/journal"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "request_id", "order_id", "actor_id",
	"vehicle_id", "driver_id", "trailer_id",
	"outcome", "message", "superseded", "created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, submissionEntity entities.Submission) (*entities.Submission, error) {
	model := FromDomain(&submissionEntity)
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.
		Insert("assignment_submissions").
		Columns("request_id", "order_id", "actor_id", "vehicle_id", "driver_id", "trailer_id",
			"outcome", "message", "superseded", "created_at").
		Values(model.RequestID, model.OrderID, model.ActorID, model.VehicleID, model.DriverID, model.TrailerID,
			model.Outcome, model.Message, model.Superseded, model.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected submission repository create error: %w", err)
	}

	err = r.querier.QueryRow(ctx, query, args...).Scan(&model.ID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, journal.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("unexpected submission repository create error: %w", err)
	}

	return ToDomain(model), nil
}

// MarkSuperseded помечает все прежние принятые попытки по заказу как вытесненные.
func (r *Repository) MarkSuperseded(ctx context.Context, orderID string) (int64, error) {
	query := `
		UPDATE assignment_submissions
		SET superseded = TRUE
		WHERE order_id = $1 AND outcome = 'accepted' AND superseded = FALSE
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected submission repository mark superseded error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID string, limit uint64) ([]entities.Submission, error) {
	builder := qb.
		Select(columns...).
		From("assignment_submissions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected submission repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected submission repository list error: %w", err)
	}
	defer rows.Close()

	submissions := []entities.Submission{}
	for rows.Next() {
		var model SubmissionDB
		err := rows.Scan(
			&model.ID,
			&model.RequestID,
			&model.OrderID,
			&model.ActorID,
			&model.VehicleID,
			&model.DriverID,
			&model.TrailerID,
			&model.Outcome,
			&model.Message,
			&model.Superseded,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected submission repository scan error: %w", err)
		}
		submissions = append(submissions, *ToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected submission repository rows error: %w", err)
	}

	return submissions, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := qb.
		Delete("assignment_submissions").
		Where(sq.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected submission repository cleanup error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected submission repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}
