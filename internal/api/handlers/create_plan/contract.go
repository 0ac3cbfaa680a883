package create_plan

import (
	"context"

	"github.com/consultly/booking-service/internal/service/plans/models"
)

type PlansService interface {
	Create(ctx context.Context, req *models.CreatePlanRequest) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
