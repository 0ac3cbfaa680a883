package get_available_slots

import (
	"github.com/consultly/booking-service/internal/domain"
	getAvailableSlots "github.com/consultly/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Label     string `json:"label"`     // "9:00 AM - 9:30 AM"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:30"
	IsBooked  bool   `json:"isBooked"`
}

// GetAvailableSlotsResponse HTTP модель ответа
type GetAvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Label:     s.Label,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsBooked:  s.IsBooked,
		})
	}
	return &GetAvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
