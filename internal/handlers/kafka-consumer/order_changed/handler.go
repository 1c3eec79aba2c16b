package order_changed

import (
	"encoding/json"
	"strings"

	"dashboard/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	invalidator Invalidator
	log         handlerLogger
}

func New(log handlerLogger, invalidator Invalidator) *Handler {
	return &Handler{
		invalidator: invalidator,
		log:         log,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(sess, message)

		case <-sess.Context().Done():
			h.log.Info("order.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing помечает сообщение обработанным в любом случае: инвалидация не блокирует,
// а повторная доставка битого сообщения ничего не исправит.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	defer sess.MarkMessage(message, "")

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.Error("order.changed handler received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		return
	}

	orderID := strings.TrimSpace(event.OrderID)
	if orderID == "" {
		h.log.Warn("order.changed handler received event without order id",
			logger.NewField("event", event.Event),
			logger.NewField("offset", message.Offset),
		)
		return
	}

	refreshed := h.invalidator.Invalidate(orderID)

	h.log.Info("order.changed: processed",
		logger.NewField("order", orderID),
		logger.NewField("event", event.Event),
		logger.NewField("scopes", refreshed),
		logger.NewField("offset", message.Offset),
	)
}
