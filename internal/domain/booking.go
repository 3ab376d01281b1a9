package domain

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking represents a client repair visit assigned to an employee
type Booking struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`

	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	ServiceType string  `json:"serviceType"`
	DeviceType  string  `json:"deviceType"`
	Description *string `json:"description,omitempty"`

	AddressStreet    *string `json:"addressStreet,omitempty"`
	AddressHouse     *string `json:"addressHouse,omitempty"`
	AddressApartment *string `json:"addressApartment,omitempty"`

	ScheduledDate     time.Time        `json:"scheduledDate"`
	ScheduledTime     types.TimeString `json:"scheduledTime"`
	EstimatedDuration int              `json:"estimatedDuration"` // минуты

	Status BookingStatus `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive returns true if the booking still occupies its slot.
// Отменённые заявки слот не занимают.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// CanBeReassigned returns true if the booking can be moved to another
// employee or time slot
func (b *Booking) CanBeReassigned() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// EndTime returns the end of the booking window (exclusive)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.ScheduledTime.AddMinutes(b.EstimatedDuration)
}

// SameSlot returns true if the booking is already placed at the given cell
func (b *Booking) SameSlot(employeeID string, date time.Time, t types.TimeString) bool {
	return b.EmployeeID == employeeID &&
		b.ScheduledDate.Format(DateFormat) == date.Format(DateFormat) &&
		b.ScheduledTime == t
}
