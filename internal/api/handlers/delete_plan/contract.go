package delete_plan

import "context"

type PlansService interface {
	Delete(ctx context.Context, planID int64, adminID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
