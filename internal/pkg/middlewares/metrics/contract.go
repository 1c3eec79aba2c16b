package metrics

import "dashboard/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
}
