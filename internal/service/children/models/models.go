package models

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модели

// CreateChildRequest запрос на регистрацию ребенка
type CreateChildRequest struct {
	ParentID            string  `json:"-"`
	Name                string  `json:"name"`
	DateOfBirth         string  `json:"dateOfBirth"` // "2024-03-15"
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
}

// Response модели

// ChildResponse ответ с данными ребенка
type ChildResponse struct {
	ID                  string    `json:"id"`
	ParentID            string    `json:"parentId"`
	Name                string    `json:"name"`
	DateOfBirth         string    `json:"dateOfBirth"`
	AgeBand             string    `json:"ageBand"` // на текущую дату
	SpecialRequirements *string   `json:"specialRequirements,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ChildListResponse ответ со списком детей
type ChildListResponse struct {
	Children []ChildResponse `json:"children"`
}

// FromDomainChild конвертирует domain модель в DTO
func FromDomainChild(c *domain.Child, today time.Time) *ChildResponse {
	if c == nil {
		return nil
	}

	return &ChildResponse{
		ID:                  c.ID,
		ParentID:            c.ParentID,
		Name:                c.Name,
		DateOfBirth:         c.DateOfBirth.Format(domain.DateFormat),
		AgeBand:             string(c.AgeBandAt(today)),
		SpecialRequirements: c.SpecialRequirements,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// FromDomainChildList конвертирует список domain моделей в DTO
func FromDomainChildList(children []*domain.Child, today time.Time) *ChildListResponse {
	resp := &ChildListResponse{
		Children: make([]ChildResponse, 0, len(children)),
	}

	for _, c := range children {
		resp.Children = append(resp.Children, *FromDomainChild(c, today))
	}

	return resp
}
