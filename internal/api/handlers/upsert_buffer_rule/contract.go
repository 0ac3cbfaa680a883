package upsert_buffer_rule

import (
	"context"

	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

type BufferRulesService interface {
	Upsert(ctx context.Context, req *models.UpsertBufferRuleRequest) (*models.BufferRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
