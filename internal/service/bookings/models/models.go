package models

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену заявки
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetEmployeeBookingsRequest запрос на получение заявок сотрудника
type GetEmployeeBookingsRequest struct {
	EmployeeID      string     `json:"employeeId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные заявки
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employeeId"`
	ClientName        string `json:"clientName"`
	ClientPhone       string `json:"clientPhone"`
	ServiceType       string `json:"serviceType"`
	DeviceType        string `json:"deviceType"`
	ScheduledDate     string `json:"scheduledDate"` // "2026-04-15"
	ScheduledTime     string `json:"scheduledTime"` // "10:00"
	EstimatedDuration int    `json:"estimatedDuration"`
	Status            string `json:"status"`

	Description      *string `json:"description,omitempty"`
	AddressStreet    *string `json:"addressStreet,omitempty"`
	AddressHouse     *string `json:"addressHouse,omitempty"`
	AddressApartment *string `json:"addressApartment,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		EmployeeID:         b.EmployeeID,
		ClientName:         b.ClientName,
		ClientPhone:        b.ClientPhone,
		ServiceType:        b.ServiceType,
		DeviceType:         b.DeviceType,
		ScheduledDate:      b.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:      b.ScheduledTime.String(),
		EstimatedDuration:  b.EstimatedDuration,
		Status:             string(b.Status),
		Description:        b.Description,
		AddressStreet:      b.AddressStreet,
		AddressHouse:       b.AddressHouse,
		AddressApartment:   b.AddressApartment,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}
