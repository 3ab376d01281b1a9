package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/schedules/models"
)

// Service сервис для работы с шаблонами расписания
type Service struct {
	scheduleRepo ScheduleRepository
	employeeRepo EmployeeRepository
	counterRepo  CounterRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	employeeRepo EmployeeRepository,
	counterRepo CounterRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		counterRepo:  counterRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// SaveTemplate сохраняет недельный шаблон расписания сотрудника.
// У сотрудника хранится один активный шаблон: повторное сохранение
// замещает предыдущий, сохраняя его идентификатор
func (s *Service) SaveTemplate(ctx context.Context, employeeID string, req *models.SaveTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("SaveTemplate: saving template for employee=%s", employeeID)

	// Проверяем, что сотрудник существует
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("SaveTemplate: employee id=%s not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("SaveTemplate: failed to get employee id=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: SaveTemplate - repository error: %v", ErrInternal, err)
	}

	quick, err := req.ToDomainQuickSchedule()
	if err != nil {
		s.logger.Warn("SaveTemplate: invalid template for employee=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved *domain.ScheduleTemplate

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Сохраняем идентификатор существующего шаблона, если он есть
		var id string
		existing, err := s.scheduleRepo.GetByEmployee(txCtx, employeeID)
		switch {
		case err == nil:
			id = existing.ID
		case errors.Is(err, scheduleRepo.ErrTemplateNotFound):
			id, err = s.counterRepo.MintID(txCtx, domain.CounterSchedules, domain.RefPrefixSchedule)
			if err != nil {
				s.logger.Error("SaveTemplate: failed to mint template id: %v", err)
				return fmt.Errorf("%w: SaveTemplate - failed to mint id: %v", ErrInternal, err)
			}
		default:
			s.logger.Error("SaveTemplate: failed to get existing template for employee=%s: %v", employeeID, err)
			return fmt.Errorf("%w: SaveTemplate - repository error: %v", ErrInternal, err)
		}

		tpl := &domain.ScheduleTemplate{
			ID:         id,
			EmployeeID: employeeID,
			Type:       domain.ScheduleTemplateTypeWeekly,
			Data:       domain.TemplateData{QuickSchedule: *quick},
			IsActive:   true,
		}

		saved, err = s.scheduleRepo.Save(txCtx, tpl)
		if err != nil {
			s.logger.Error("SaveTemplate: repository error for employee=%s: %v", employeeID, err)
			return fmt.Errorf("%w: SaveTemplate - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SaveTemplate: successfully saved template id=%s for employee=%s", saved.ID, employeeID)
	return models.FromDomainTemplate(saved), nil
}

// GetByEmployee получает активный шаблон расписания сотрудника
func (s *Service) GetByEmployee(ctx context.Context, employeeID string) (*models.TemplateResponse, error) {
	s.logger.Info("GetByEmployee: fetching template for employee=%s", employeeID)

	tpl, err := s.scheduleRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
			s.logger.Warn("GetByEmployee: template for employee=%s not found", employeeID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("GetByEmployee: repository error for employee=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetByEmployee - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(tpl), nil
}

// ResolveDay разворачивает шаблон сотрудника в эффективное рабочее окно на дату.
// Отсутствующий шаблон означает нерабочий день, а не ошибку
func (s *Service) ResolveDay(ctx context.Context, employeeID string, date time.Time) (*models.DayScheduleResponse, error) {
	s.logger.Info("ResolveDay: resolving schedule for employee=%s, date=%s",
		employeeID, date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	tpl, err := s.scheduleRepo.GetByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
		s.logger.Error("ResolveDay: repository error for employee=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ResolveDay - repository error: %v", ErrInternal, err)
	}

	window, working := schedule.ResolveWorkWindow(tpl, date)
	return models.FromWorkWindow(employeeID, date, window, working), nil
}
