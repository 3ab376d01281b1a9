package domain

// Counter process-wide monotonically increasing sequence per entity kind.
// Используется для генерации человекочитаемых номеров (emp_001, book_042).
type Counter struct {
	Kind  string `json:"kind"`
	Value int64  `json:"value"`
}

// Counter kinds
const (
	CounterEmployees = "employees"
	CounterSchedules = "schedules"
	CounterBookings  = "bookings"
)

// Reference prefixes per counter kind
const (
	RefPrefixEmployee = "emp"
	RefPrefixSchedule = "sched"
	RefPrefixBooking  = "book"
)
