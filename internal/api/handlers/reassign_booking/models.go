package reassign_booking

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	reassignBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// ReassignBookingRequest HTTP request model
type ReassignBookingRequest struct {
	TargetEmployeeID string `json:"targetEmployeeId"`
	TargetDate       string `json:"targetDate"` // "2026-04-15"
	TargetTime       string `json:"targetTime"` // "10:00"
}

// ReassignBookingResponse HTTP response model
type ReassignBookingResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employeeId"`
	PrevEmployeeID    string `json:"prevEmployeeId"`
	ScheduledDate     string `json:"scheduledDate"`
	ScheduledTime     string `json:"scheduledTime"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Status            string `json:"status"`
	Moved             bool   `json:"moved"`
	UpdatedAt         string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReassignBookingRequest) ToUseCaseRequest(bookingID string) (*reassignBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.TargetDate)
	if err != nil {
		return nil, err
	}

	targetTime, err := types.NewTimeStringFromString(r.TargetTime)
	if err != nil {
		return nil, err
	}

	return &reassignBooking.Request{
		BookingID:        bookingID,
		TargetEmployeeID: r.TargetEmployeeID,
		TargetDate:       date,
		TargetTime:       targetTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reassignBooking.Response) *ReassignBookingResponse {
	return &ReassignBookingResponse{
		ID:                resp.ID,
		EmployeeID:        resp.EmployeeID,
		PrevEmployeeID:    resp.PrevEmployeeID,
		ScheduledDate:     resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:     resp.ScheduledTime.String(),
		EstimatedDuration: resp.EstimatedDuration,
		Status:            resp.Status,
		Moved:             resp.Moved,
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
