package models

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// Request модели

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Specialization []string `json:"specialization,omitempty"`
}

// UpdateEmployeeRequest запрос на обновление сотрудника
// Nil-поля остаются без изменений
type UpdateEmployeeRequest struct {
	FirstName      *string   `json:"firstName,omitempty"`
	LastName       *string   `json:"lastName,omitempty"`
	Specialization *[]string `json:"specialization,omitempty"`
	IsActive       *bool     `json:"isActive,omitempty"`
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	FullName       string   `json:"fullName"`
	Specialization []string `json:"specialization"`
	IsActive       bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// Методы конвертации

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	specialization := e.Specialization
	if specialization == nil {
		specialization = []string{}
	}

	return &EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Specialization: specialization,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}

	for _, e := range employees {
		resp.Employees = append(resp.Employees, *FromDomainEmployee(e))
	}

	return resp
}
