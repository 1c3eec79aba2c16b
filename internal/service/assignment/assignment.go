package assignment

import (
	"context"
	"errors"
	"strings"
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/gateway/rest/backend"
	"dashboard/pkg/logger"

	"github.com/google/uuid"
)

const DefaultSubmitTimeout = 15 * time.Second

type Result struct {
	Order *entities.Order
	// бэкенд принял назначение, но не вернул заказ
	NeedsRefetch bool
	RequestID    string
}

type Engine struct {
	gateway       Gateway
	journal       Journal
	log           serviceLogger
	submitTimeout time.Duration
}

func New(log serviceLogger, gateway Gateway, journal Journal, submitTimeout time.Duration) *Engine {
	if submitTimeout <= 0 {
		submitTimeout = DefaultSubmitTimeout
	}

	return &Engine{
		gateway:       gateway,
		journal:       journal,
		log:           log,
		submitTimeout: submitTimeout,
	}
}

// Assign проверяет ввод и отправляет частичное назначение ресурсов. Отправка не повторяется.
// Отмена ctx вызывающего не прерывает уже начатую отправку.
func (e *Engine) Assign(ctx context.Context, orderID string, sel entities.Selections, actorID string) (*Result, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrUnauthenticated
	}
	if sel.Empty() {
		return nil, ErrNothingToAssign
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	sel = sel.Normalized()
	requestID := uuid.NewString()

	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.submitTimeout)
	defer cancel()

	order, err := e.gateway.AssignFleetResources(submitCtx, requestID, orderID, sel, actorID)

	submission := entities.Submission{
		RequestID:  requestID,
		OrderID:    orderID,
		ActorID:    actorID,
		Selections: sel,
		CreatedAt:  time.Now().UTC(),
	}

	if err != nil {
		message := failureMessage(err)

		submission.Outcome = entities.SubmissionRejected
		submission.Message = message
		e.record(submitCtx, submission)

		SubmissionsTotal.WithLabelValues(entities.SubmissionRejected.String()).Inc()
		e.log.Warn("assignment rejected",
			logger.NewField("order_id", orderID),
			logger.NewField("request_id", requestID),
			logger.NewField("error", err),
		)

		return nil, &SubmissionError{Message: message, Err: err}
	}

	submission.Outcome = entities.SubmissionAccepted
	e.record(submitCtx, submission)

	SubmissionsTotal.WithLabelValues(entities.SubmissionAccepted.String()).Inc()
	e.log.Info("resources assigned",
		logger.NewField("order_id", orderID),
		logger.NewField("request_id", requestID),
		logger.NewField("order_returned", order != nil),
	)

	return &Result{
		Order:        order,
		NeedsRefetch: order == nil,
		RequestID:    requestID,
	}, nil
}

// record пишет попытку в журнал. Ошибка журнала не меняет исход назначения.
func (e *Engine) record(ctx context.Context, submission entities.Submission) {
	if e.journal == nil {
		return
	}

	if _, err := e.journal.Record(ctx, submission); err != nil {
		e.log.Warn("journal record failed",
			logger.NewField("order_id", submission.OrderID),
			logger.NewField("request_id", submission.RequestID),
			logger.NewField("error", err),
		)
	}
}

func failureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.ErrorText != "" {
			return apiErr.ErrorText
		}
	}
	return defaultFailureMessage
}
