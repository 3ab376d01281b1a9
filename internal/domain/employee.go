package domain

import "time"

// Employee represents a field-service employee (мастер выездного ремонта)
type Employee struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Specialization []string `json:"specialization"`
	IsActive       bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the display name for the schedule grid
func (e *Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// HasSpecialization returns true if the employee covers the given service type
func (e *Employee) HasSpecialization(s string) bool {
	for _, spec := range e.Specialization {
		if spec == s {
			return true
		}
	}
	return false
}
