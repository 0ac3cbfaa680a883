package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	AdminID int64     // ID консультанта
	PlanID  int64     // ID плана консультации
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Все слоты дня с признаком занятости
}

// Slot модель временного слота
type Slot struct {
	Label     string // Идентичность слота, например "9:00 AM - 9:30 AM"
	StartTime string // Время начала в 24-часовом формате "09:00"
	EndTime   string // Время конца в 24-часовом формате "09:30"
	IsBooked  bool   // Занят ли слот активной записью
}
