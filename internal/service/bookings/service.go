package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/bookings/models"
)

// Service сервис для работы с заявками
type Service struct {
	bookingRepo  BookingRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	employeeRepo EmployeeRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetEmployeeBookings получает заявки сотрудника с фильтрацией по периоду
//
// Примеры использования:
// - Все активные заявки: GetEmployeeBookings(ctx, &GetEmployeeBookingsRequest{EmployeeID: "emp_001"})
// - Заявки на дату: StartDate и EndDate указывают на одну дату
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetEmployeeBookings(ctx context.Context, req *models.GetEmployeeBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetEmployeeBookings: fetching bookings for employee=%s", req.EmployeeID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if strings.TrimSpace(req.EmployeeID) == "" {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	// Проверяем, что сотрудник существует
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetEmployeeBookings: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetEmployeeBookings: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeBookings - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByEmployee(ctx, req.EmployeeID, req.StartDate, req.EndDate, !req.IncludeInactive)
	if err != nil {
		s.logger.Error("GetEmployeeBookings: repository error for employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEmployeeBookings: successfully fetched %d bookings for employee=%s",
		len(bookings), req.EmployeeID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет заявку: статус становится cancelled, слот в сетке освобождается
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason is too long (max %d characters)",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить заявку
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return models.FromDomainBooking(cancelled), nil
}
