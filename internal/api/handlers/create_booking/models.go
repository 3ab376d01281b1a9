package create_booking

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	createBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/create_booking"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EmployeeID        string  `json:"employeeId"`
	ClientName        string  `json:"clientName"`
	ClientPhone       string  `json:"clientPhone"`
	ServiceType       string  `json:"serviceType"`
	DeviceType        string  `json:"deviceType"`
	Description       *string `json:"description,omitempty"`
	AddressStreet     *string `json:"addressStreet,omitempty"`
	AddressHouse      *string `json:"addressHouse,omitempty"`
	AddressApartment  *string `json:"addressApartment,omitempty"`
	ScheduledDate     string  `json:"scheduledDate"` // "2026-04-15"
	ScheduledTime     string  `json:"scheduledTime"` // "10:00"
	EstimatedDuration int     `json:"estimatedDuration"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	ClientName        string  `json:"clientName"`
	ClientPhone       string  `json:"clientPhone"`
	ServiceType       string  `json:"serviceType"`
	DeviceType        string  `json:"deviceType"`
	Description       *string `json:"description,omitempty"`
	AddressStreet     *string `json:"addressStreet,omitempty"`
	AddressHouse      *string `json:"addressHouse,omitempty"`
	AddressApartment  *string `json:"addressApartment,omitempty"`
	ScheduledDate     string  `json:"scheduledDate"`
	ScheduledTime     string  `json:"scheduledTime"`
	EstimatedDuration int     `json:"estimatedDuration"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	scheduledTime, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EmployeeID:        r.EmployeeID,
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		ServiceType:       r.ServiceType,
		DeviceType:        r.DeviceType,
		Description:       r.Description,
		AddressStreet:     r.AddressStreet,
		AddressHouse:      r.AddressHouse,
		AddressApartment:  r.AddressApartment,
		Date:              date,
		ScheduledTime:     scheduledTime,
		EstimatedDuration: r.EstimatedDuration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		EmployeeID:        resp.EmployeeID,
		ClientName:        resp.ClientName,
		ClientPhone:       resp.ClientPhone,
		ServiceType:       resp.ServiceType,
		DeviceType:        resp.DeviceType,
		Description:       resp.Description,
		AddressStreet:     resp.AddressStreet,
		AddressHouse:      resp.AddressHouse,
		AddressApartment:  resp.AddressApartment,
		ScheduledDate:     resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:     resp.ScheduledTime.String(),
		EstimatedDuration: resp.EstimatedDuration,
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
