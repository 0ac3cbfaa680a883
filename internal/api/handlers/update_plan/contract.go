package update_plan

import (
	"context"

	"github.com/consultly/booking-service/internal/service/plans/models"
)

type PlansService interface {
	Update(ctx context.Context, planID int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
