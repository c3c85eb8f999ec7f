package create_booking

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ParentID string // ID родителя (из заголовка авторизации)
	ChildID  string // ID ребенка
	SlotID   string // ID слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       string
	ChildID  string
	SlotID   string
	ParentID string
	Status   string

	// Денормализованные данные
	ChildName string
	AgeBand   domain.AgeBand // Возрастная группа на дату слота
	SlotDate  time.Time
	Session   domain.Session

	// Свободные места в группе ребенка после бронирования
	RemainingPlaces int

	CreatedAt time.Time
	UpdatedAt time.Time
}
