package domain

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/pkg/types"
)

// Session is the part of the day a slot covers
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
	SessionFullDay   Session = "full_day"
)

// IsValid returns true if the session is a known value
func (s Session) IsValid() bool {
	return s == SessionMorning || s == SessionAfternoon || s == SessionFullDay
}

// DefaultTimes returns the standard opening hours of the session
func (s Session) DefaultTimes() (start, end types.TimeString) {
	switch s {
	case SessionMorning:
		return "08:00", "13:00"
	case SessionAfternoon:
		return "13:00", "18:00"
	case SessionFullDay:
		return "08:00", "18:00"
	default:
		return "", ""
	}
}

// Slot represents a bookable unit of childcare time
type Slot struct {
	ID        string
	Date      time.Time
	Session   Session
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBlocked bool // Blocked slots accept no new bookings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new bookings may be made for the slot
func (s *Slot) IsBookable() bool {
	return !s.IsBlocked
}

// HasStarted returns true if the slot start is at or before now
func (s *Slot) HasStarted(now time.Time) bool {
	start, err := s.StartTime.On(s.Date)
	if err != nil {
		// Без корректного времени начала сравниваем по дате
		return isDateBefore(s.Date, now)
	}
	return !start.After(now)
}

// SlotFilter фильтр для выборки слотов за период
type SlotFilter struct {
	From           time.Time // Начало периода (включительно)
	To             time.Time // Конец периода (включительно)
	IncludeBlocked bool
}

func isDateBefore(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
