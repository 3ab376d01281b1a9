package get_employee_bookings

import (
	"context"

	"github.com/v-lavrov/RS-SchedulerService/internal/service/bookings/models"
)

type BookingService interface {
	GetEmployeeBookings(ctx context.Context, req *models.GetEmployeeBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
