package get_buffer_rules

import (
	"context"

	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

type BufferRulesService interface {
	List(ctx context.Context, adminID int64) (*models.BufferRuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
