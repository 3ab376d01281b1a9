package get_schedule_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// UseCase use case построения сетки расписания на день
type UseCase struct {
	employeeRepo EmployeeRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	gridConfig   schedule.GridConfig
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	gridConfig schedule.GridConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		gridConfig:   gridConfig,
		logger:       logger,
	}
}

// Execute строит сетку расписания на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleGrid: date=%s, employees=%d",
		req.Date.Format(domain.DateFormat), len(req.EmployeeIDs))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Генерируем метки визуальной сетки: они одинаковы для всех
	// сотрудников независимо от их рабочих часов
	labels, err := schedule.Grid(uc.gridConfig)
	if err != nil {
		uc.logger.Error("GetScheduleGrid: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	// 3. Определяем список сотрудников
	employees, err := uc.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	// 4. Проецируем доступность каждого сотрудника на сетку
	rows := make([]EmployeeRow, 0, len(employees))
	for _, emp := range employees {
		row, err := uc.buildRow(ctx, emp, req, labels)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	uc.logger.Info("GetScheduleGrid: built %d rows x %d labels for date=%s",
		len(rows), len(labels), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		Labels: labels,
		Rows:   rows,
	}, nil
}

func (uc *UseCase) resolveEmployees(ctx context.Context, ids []string) ([]*domain.Employee, error) {
	if len(ids) == 0 {
		employees, err := uc.employeeRepo.List(ctx, true)
		if err != nil {
			uc.logger.Error("GetScheduleGrid: failed to list employees: %v", err)
			return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
		}
		return employees, nil
	}

	employees := make([]*domain.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := uc.employeeRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Warn("GetScheduleGrid: employee id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrEmployeeNotFound, id)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func (uc *UseCase) buildRow(ctx context.Context, emp *domain.Employee, req *Request, labels []types.TimeString) (*EmployeeRow, error) {
	// Отсутствующий шаблон означает нерабочий день, а не ошибку
	tpl, err := uc.scheduleRepo.GetByEmployee(ctx, emp.ID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
		uc.logger.Error("GetScheduleGrid: failed to get template for employee=%s: %v", emp.ID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	window, working := schedule.ResolveWorkWindow(tpl, req.Date)

	var bookings []*domain.Booking
	if working {
		bookings, err = uc.bookingRepo.GetByEmployeeAndDate(ctx, emp.ID, req.Date, true)
		if err != nil {
			uc.logger.Error("GetScheduleGrid: failed to get bookings for employee=%s: %v", emp.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
	}

	cells := make([]domain.GridCell, 0, len(labels))
	for _, label := range labels {
		cells = append(cells, schedule.ClassifySlot(window, bookings, label))
	}

	return &EmployeeRow{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Working:      working,
		Cells:        cells,
	}, nil
}
