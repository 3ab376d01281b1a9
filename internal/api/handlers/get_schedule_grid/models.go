package get_schedule_grid

import (
	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	getScheduleGrid "github.com/v-lavrov/RS-SchedulerService/internal/usecase/get_schedule_grid"
)

// GridCellResponse одна ячейка сетки
type GridCellResponse struct {
	Time      string  `json:"time"`  // "10:00"
	State     string  `json:"state"` // not_working | break | available | booked
	BookingID *string `json:"bookingId,omitempty"`
}

// EmployeeRowResponse строка сетки одного сотрудника
type EmployeeRowResponse struct {
	EmployeeID   string             `json:"employeeId"`
	EmployeeName string             `json:"employeeName"`
	Working      bool               `json:"working"`
	Cells        []GridCellResponse `json:"cells"`
}

// ScheduleGridResponse HTTP response model
type ScheduleGridResponse struct {
	Date   string                `json:"date"` // "2026-04-15"
	Labels []string              `json:"labels"`
	Rows   []EmployeeRowResponse `json:"rows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleGrid.Response) *ScheduleGridResponse {
	labels := make([]string, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		labels = append(labels, l.String())
	}

	rows := make([]EmployeeRowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		cells := make([]GridCellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, GridCellResponse{
				Time:      cell.Time.String(),
				State:     string(cell.State),
				BookingID: cell.BookingID,
			})
		}
		rows = append(rows, EmployeeRowResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Working:      row.Working,
			Cells:        cells,
		})
	}

	return &ScheduleGridResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Labels: labels,
		Rows:   rows,
	}
}
