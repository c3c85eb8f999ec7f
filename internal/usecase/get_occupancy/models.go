package get_occupancy

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модель запроса календаря загрузки
type Request struct {
	From           time.Time // Начало периода (включительно)
	To             time.Time // Конец периода (включительно)
	IncludeBlocked bool      // Показывать закрытые слоты
}

// Response модель ответа с загрузкой слотов за период
type Response struct {
	From  time.Time
	To    time.Time
	Slots []SlotOccupancy
}

// SlotOccupancy загрузка одного слота
type SlotOccupancy struct {
	Slot   *domain.Slot
	Staff  compliance.Summary
	Counts domain.ChildCount
	Result domain.ComplianceResult
}

// NonCompliant возвращает количество слотов, не соответствующих нормам
func (r *Response) NonCompliant() int {
	n := 0
	for _, s := range r.Slots {
		if !s.Result.Compliant {
			n++
		}
	}
	return n
}
