package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ParentID string    // ID родителя
	ChildID  *string   // Если указан, остаются только слоты с местом в группе ребенка
	From     time.Time // Начало периода (включительно)
	To       time.Time // Конец периода (включительно)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	From    time.Time
	To      time.Time
	ChildID *string
	Slots   []Slot
}

// Slot модель слота с количеством свободных мест
type Slot struct {
	ID        string
	Date      time.Time
	Session   domain.Session
	StartTime types.TimeString
	EndTime   types.TimeString
	Available map[domain.AgeBand]int // Свободные места по возрастным группам
	AgeBand   *domain.AgeBand        // Группа ребенка на дату слота (если указан ChildID)
}
