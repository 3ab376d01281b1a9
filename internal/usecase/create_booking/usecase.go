package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
)

// UseCase use case для создания заявки на визит
type UseCase struct {
	employeeRepo EmployeeRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	counterRepo  CounterRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	counterRepo CounterRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		counterRepo:  counterRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания заявки
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: employee=%s, date=%s, time=%s, duration=%d",
		req.EmployeeID, req.Date.Format(domain.DateFormat), req.ScheduledTime, req.EstimatedDuration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if req.EstimatedDuration%domain.DurationStepMinutes != 0 {
		uc.logger.Warn("CreateBooking: duration %d is not a multiple of the %d-minute grid step",
			req.EstimatedDuration, domain.DurationStepMinutes)
	}

	// 2. Проверяем, что дата визита не в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Получаем сотрудника
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	if !employee.IsActive {
		uc.logger.Warn("CreateBooking: employee id=%s is inactive", req.EmployeeID)
		return nil, ErrEmployeeInactive
	}

	// 4. Получаем шаблон расписания сотрудника
	// Отсутствующий шаблон означает нерабочий день
	tpl, err := uc.scheduleRepo.GetByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
		uc.logger.Error("CreateBooking: failed to get template for employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 5. Разворачиваем шаблон в рабочее окно на указанную дату
	window, working := schedule.ResolveWorkWindow(tpl, req.Date)
	if !working {
		uc.logger.Warn("CreateBooking: employee id=%s is not working on %s",
			req.EmployeeID, req.Date.Format(domain.DateFormat))
		return nil, ErrEmployeeNotWorking
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем все активные заявки сотрудника на эту дату
		bookings, err := uc.bookingRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем размещение заявки в рабочем окне
		if err := schedule.CheckPlacement(window, bookings, "", req.ScheduledTime, req.EstimatedDuration); err != nil {
			uc.logger.Warn("CreateBooking: placement rejected for employee=%s at %s: %v",
				req.EmployeeID, req.ScheduledTime, err)
			return mapPlacementError(err)
		}

		// 6.3. Выдаем новый идентификатор заявки
		id, err := uc.counterRepo.MintID(txCtx, domain.CounterBookings, domain.RefPrefixBooking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to mint booking id: %v", err)
			return fmt.Errorf("%w: failed to mint booking id: %v", ErrInternal, err)
		}

		// 6.4. Создаем заявку
		booking := &domain.Booking{
			ID:                id,
			EmployeeID:        req.EmployeeID,
			ClientName:        req.ClientName,
			ClientPhone:       req.ClientPhone,
			ServiceType:       req.ServiceType,
			DeviceType:        req.DeviceType,
			Description:       req.Description,
			AddressStreet:     req.AddressStreet,
			AddressHouse:      req.AddressHouse,
			AddressApartment:  req.AddressApartment,
			ScheduledDate:     req.Date,
			ScheduledTime:     req.ScheduledTime,
			EstimatedDuration: req.EstimatedDuration,
			Status:            domain.StatusScheduled,
		}

		// 6.5. Сохраняем заявку
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for employee=%s",
		result.ID, result.EmployeeID)

	// Конвертируем в response
	return &Response{
		ID:                result.ID,
		EmployeeID:        result.EmployeeID,
		ClientName:        result.ClientName,
		ClientPhone:       result.ClientPhone,
		ServiceType:       result.ServiceType,
		DeviceType:        result.DeviceType,
		Description:       result.Description,
		AddressStreet:     result.AddressStreet,
		AddressHouse:      result.AddressHouse,
		AddressApartment:  result.AddressApartment,
		ScheduledDate:     result.ScheduledDate,
		ScheduledTime:     result.ScheduledTime,
		EstimatedDuration: result.EstimatedDuration,
		Status:            string(result.Status),
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}

// mapPlacementError переводит ошибки проверки размещения в ошибки usecase
func mapPlacementError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrNotWorking):
		return ErrEmployeeNotWorking
	case errors.Is(err, schedule.ErrOnBreak):
		return ErrEmployeeOnBreak
	case errors.Is(err, schedule.ErrSlotOccupied):
		return fmt.Errorf("%w: %v", ErrSlotOccupied, err)
	case errors.Is(err, schedule.ErrInvalidDuration):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
