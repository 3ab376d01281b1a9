package drag_booking

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/dragdrop"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// BeginDragRequest HTTP request model
type BeginDragRequest struct {
	BookingID string `json:"bookingId"`
}

// TargetRequest целевая ячейка в запросах hover и drop
type TargetRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // "2026-04-15"
	Time       string `json:"time"` // "10:00"
}

// SessionResponse HTTP response model для начала перетаскивания
type SessionResponse struct {
	BookingID      string `json:"bookingId"`
	SourceEmployee string `json:"sourceEmployee"`
	SourceDate     string `json:"sourceDate"`
	SourceTime     string `json:"sourceTime"`
	Duration       int    `json:"duration"`
	State          string `json:"state"`
}

// HoverResponse HTTP response model для проверки ячейки
type HoverResponse struct {
	Allowed bool   `json:"allowed"`
	OwnCell bool   `json:"ownCell"`
	Reason  string `json:"reason,omitempty"`
}

// DropResponse HTTP response model для завершения перетаскивания
type DropResponse struct {
	BookingID  string `json:"bookingId"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Moved      bool   `json:"moved"`
}

// ToTarget конвертирует запрос в целевую ячейку координатора
func (r *TargetRequest) ToTarget() (dragdrop.Target, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return dragdrop.Target{}, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return dragdrop.Target{}, err
	}

	return dragdrop.Target{
		EmployeeID: r.EmployeeID,
		Date:       date,
		Time:       t,
	}, nil
}

// FromSession конвертирует сессию координатора в HTTP response
func FromSession(s *dragdrop.Session) *SessionResponse {
	return &SessionResponse{
		BookingID:      s.BookingID,
		SourceEmployee: s.SourceEmployee,
		SourceDate:     s.SourceDate.Format(domain.DateFormat),
		SourceTime:     s.SourceTime.String(),
		Duration:       s.Duration,
		State:          string(s.State),
	}
}

// FromHoverResult конвертирует результат проверки в HTTP response
func FromHoverResult(res *dragdrop.HoverResult) *HoverResponse {
	return &HoverResponse{
		Allowed: res.Allowed,
		OwnCell: res.OwnCell,
		Reason:  res.Reason,
	}
}

// FromDropResult конвертирует результат завершения в HTTP response
func FromDropResult(res *dragdrop.DropResult) *DropResponse {
	return &DropResponse{
		BookingID:  res.BookingID,
		EmployeeID: res.EmployeeID,
		Date:       res.Date.Format(domain.DateFormat),
		Time:       res.Time.String(),
		Moved:      res.Moved,
	}
}
