package models

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Request модели

// CreatePlanRequest запрос на создание плана
type CreatePlanRequest struct {
	AdminID         int64    `json:"adminId"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Features        []string `json:"features,omitempty"`
}

// UpdatePlanRequest запрос на обновление плана
type UpdatePlanRequest struct {
	AdminID         int64    `json:"adminId"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Features        []string `json:"features,omitempty"`
}

// Response модели

// PlanResponse ответ с данными плана
type PlanResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Features        []string  `json:"features"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PlanListResponse ответ со списком планов
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// Методы конвертации

// FromDomainPlan конвертирует domain модель в DTO
func FromDomainPlan(p *domain.Plan) *PlanResponse {
	if p == nil {
		return nil
	}

	features := p.Features
	if features == nil {
		features = []string{}
	}

	return &PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		DurationMinutes: p.DurationMinutes,
		Features:        features,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainPlanList конвертирует список domain моделей в DTO
func FromDomainPlanList(plans []*domain.Plan) *PlanListResponse {
	result := &PlanListResponse{
		Plans: make([]PlanResponse, 0, len(plans)),
	}
	for _, p := range plans {
		result.Plans = append(result.Plans, *FromDomainPlan(p))
	}
	return result
}
