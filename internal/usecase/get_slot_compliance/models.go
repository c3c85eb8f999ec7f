package get_slot_compliance

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модель запроса на проверку соотношений слота
type Request struct {
	SlotID string
}

// Response модель ответа с результатом проверки
type Response struct {
	Slot        *domain.Slot
	StaffCount  int                     // Размер смены (включая неизвестные квалификации)
	Counts      domain.ChildCount       // Дети по возрастным группам на дату слота
	Result      domain.ComplianceResult // Результат расчёта
	Cached      bool                    // Результат взят из кэша
	EvaluatedAt time.Time
}
