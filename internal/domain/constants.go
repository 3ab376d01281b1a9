package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default grid bounds: фиксированная визуальная сетка получасовых меток.
// Границы берутся из конфигурации, это значения по умолчанию.
const (
	DefaultGridDayStart    = "06:00"
	DefaultGridDayEnd      = "23:30"
	DefaultGridStepMinutes = 30
)

// Business validation constants
const (
	MinBookingDurationMinutes = 15
	DurationStepMinutes       = 15
	MaxBookingDurationMinutes = 480 // 8 часов
	MaxDescriptionLength      = 1000
	MaxCancellationReasonLength = 500
)

// InactiveStatuses список статусов, при которых заявка не занимает слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, при которых заявка занимает слот
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
