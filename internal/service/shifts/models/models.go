package models

import (
	"fmt"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/timeutil"
)

// Request модели

// CreateShiftRequest запрос на создание смены
// Времена принимаются и в 12-часовом ("9:00 AM"), и в 24-часовом ("09:00") формате
type CreateShiftRequest struct {
	AdminID   int64  `json:"adminId"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UpdateShiftRequest запрос на обновление смены
type UpdateShiftRequest struct {
	AdminID   int64  `json:"adminId"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToDomainShift конвертирует request в domain модель
func (r *CreateShiftRequest) ToDomainShift() (*domain.Shift, error) {
	return buildShift(r.AdminID, r.Name, r.StartTime, r.EndTime)
}

// ToDomainShift конвертирует request в domain модель
func (r *UpdateShiftRequest) ToDomainShift() (*domain.Shift, error) {
	return buildShift(r.AdminID, r.Name, r.StartTime, r.EndTime)
}

func buildShift(adminID int64, name, startTime, endTime string) (*domain.Shift, error) {
	start, err := timeutil.ParseWallClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.ParseWallClock(endTime)
	if err != nil {
		return nil, err
	}
	// Равные границы дали бы вырожденное суточное окно через перенос конца
	// на следующий день
	if start == end {
		return nil, fmt.Errorf("shift start and end times must differ")
	}
	return &domain.Shift{
		OwnerID:   adminID,
		Name:      name,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// Response модели

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"` // "09:00"
	EndTime   string    `json:"endTime"`   // "13:00"
	Overnight bool      `json:"overnight"` // Смена переходит через полночь
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// Методы конвертации

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	if s == nil {
		return nil
	}
	return &ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Overnight: s.IsOvernight(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainShiftList конвертирует список domain моделей в DTO
func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	result := &ShiftListResponse{
		Shifts: make([]ShiftResponse, 0, len(shifts)),
	}
	for _, s := range shifts {
		result.Shifts = append(result.Shifts, *FromDomainShift(s))
	}
	return result
}
