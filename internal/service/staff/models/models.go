package models

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модели

// StaffRequest запрос на создание или полное обновление сотрудника
type StaffRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	QualificationLevel string `json:"qualificationLevel"`
	IsPFAHolder        bool   `json:"isPfaHolder"`
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	QualificationLevel string    `json:"qualificationLevel"`
	IsPFAHolder        bool      `json:"isPfaHolder"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// AssignmentResponse ответ с назначением сотрудника на слот
type AssignmentResponse struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	SlotID    string    `json:"slotId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(m *domain.StaffMember) *StaffResponse {
	if m == nil {
		return nil
	}

	return &StaffResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		QualificationLevel: m.QualificationLevel.String(),
		IsPFAHolder:        m.IsPFAHolder,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(members []domain.StaffMember) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(members)),
	}

	for i := range members {
		resp.Staff = append(resp.Staff, *FromDomainStaff(&members[i]))
	}

	return resp
}

// FromDomainSchedule конвертирует назначение в DTO
func FromDomainSchedule(s *domain.StaffSchedule) *AssignmentResponse {
	return &AssignmentResponse{
		ID:        s.ID,
		StaffID:   s.StaffID,
		SlotID:    s.SlotID,
		CreatedAt: s.CreatedAt,
	}
}
