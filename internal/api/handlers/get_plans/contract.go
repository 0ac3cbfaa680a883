package get_plans

import (
	"context"

	"github.com/consultly/booking-service/internal/service/plans/models"
)

type PlansService interface {
	List(ctx context.Context, adminID int64) (*models.PlanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
