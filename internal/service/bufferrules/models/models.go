package models

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Request модели

// UpsertBufferRuleRequest запрос на создание или обновление правила буфера
// Пара план-смена уникальна: повторный запрос обновляет буфер существующего правила
type UpsertBufferRuleRequest struct {
	AdminID       int64 `json:"adminId"`
	PlanID        int64 `json:"planId"`
	ShiftID       int64 `json:"shiftId"`
	BufferMinutes int   `json:"bufferMinutes"`
}

// Response модели

// BufferRuleResponse ответ с данными правила буфера
type BufferRuleResponse struct {
	ID            int64     `json:"id"`
	PlanID        int64     `json:"planId"`
	ShiftID       int64     `json:"shiftId"`
	BufferMinutes int       `json:"bufferMinutes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BufferRuleListResponse ответ со списком правил буферов
type BufferRuleListResponse struct {
	Rules []BufferRuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainBufferRule конвертирует domain модель в DTO
func FromDomainBufferRule(r *domain.BufferRule) *BufferRuleResponse {
	if r == nil {
		return nil
	}
	return &BufferRuleResponse{
		ID:            r.ID,
		PlanID:        r.PlanID,
		ShiftID:       r.ShiftID,
		BufferMinutes: r.BufferMinutes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainBufferRuleList конвертирует список domain моделей в DTO
func FromDomainBufferRuleList(rules []*domain.BufferRule) *BufferRuleListResponse {
	result := &BufferRuleListResponse{
		Rules: make([]BufferRuleResponse, 0, len(rules)),
	}
	for _, r := range rules {
		result.Rules = append(result.Rules, *FromDomainBufferRule(r))
	}
	return result
}
