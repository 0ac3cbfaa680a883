package delete_buffer_rule

import "context"

type BufferRulesService interface {
	Delete(ctx context.Context, ruleID int64, adminID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
