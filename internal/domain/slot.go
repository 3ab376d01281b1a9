package domain

import "github.com/v-lavrov/RS-SchedulerService/pkg/types"

// SlotState state of one grid cell for one employee
type SlotState string

const (
	SlotNotWorking SlotState = "not_working"
	SlotBreak      SlotState = "break"
	SlotAvailable  SlotState = "available"
	SlotBooked     SlotState = "booked"
)

// GridCell одна ячейка визуальной сетки: метка времени и состояние
// для конкретного сотрудника
type GridCell struct {
	Time      types.TimeString `json:"time"`
	State     SlotState        `json:"state"`
	BookingID *string          `json:"bookingId,omitempty"`
}

// IsFree returns true if a booking can be placed on this cell
func (c *GridCell) IsFree() bool {
	return c.State == SlotAvailable
}

// IsBooked returns true if the cell is covered by a booking window
func (c *GridCell) IsBooked() bool {
	return c.State == SlotBooked
}
