package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками
type Service struct {
	employeeRepo EmployeeRepository
	counterRepo  CounterRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	employeeRepo EmployeeRepository,
	counterRepo CounterRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		counterRepo:  counterRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает нового сотрудника с выдачей идентификатора из счетчика
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee %s %s", req.FirstName, req.LastName)

	if strings.TrimSpace(req.FirstName) == "" && strings.TrimSpace(req.LastName) == "" {
		s.logger.Warn("Create: employee name is empty")
		return nil, fmt.Errorf("%w: firstName or lastName is required", ErrInvalidInput)
	}

	var created *domain.Employee

	// Выдача идентификатора и сохранение выполняются атомарно
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		id, err := s.counterRepo.MintID(txCtx, domain.CounterEmployees, domain.RefPrefixEmployee)
		if err != nil {
			s.logger.Error("Create: failed to mint employee id: %v", err)
			return fmt.Errorf("%w: Create - failed to mint id: %v", ErrInternal, err)
		}

		employee := &domain.Employee{
			ID:             id,
			FirstName:      strings.TrimSpace(req.FirstName),
			LastName:       strings.TrimSpace(req.LastName),
			Specialization: req.Specialization,
			IsActive:       true,
		}

		created, err = s.employeeRepo.Save(txCtx, employee)
		if err != nil {
			s.logger.Error("Create: repository error: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created employee id=%s", created.ID)
	return models.FromDomainEmployee(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.EmployeeResponse, error) {
	s.logger.Info("GetByID: fetching employee id=%s", id)

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByID: employee id=%s not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByID: repository error for employee id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(employee), nil
}

// List возвращает список сотрудников
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.EmployeeListResponse, error) {
	s.logger.Info("List: fetching employees, activeOnly=%t", activeOnly)

	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}

// Update обновляет данные сотрудника: nil-поля запроса остаются без изменений
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Update: updating employee id=%s", id)

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee id=%s not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("Update: repository error for employee id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.FirstName != nil {
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Specialization != nil {
		employee.Specialization = *req.Specialization
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if employee.FirstName == "" && employee.LastName == "" {
		s.logger.Warn("Update: employee id=%s would be left without a name", id)
		return nil, fmt.Errorf("%w: firstName or lastName is required", ErrInvalidInput)
	}

	updated, err := s.employeeRepo.Save(ctx, employee)
	if err != nil {
		s.logger.Error("Update: repository error for employee id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated employee id=%s", id)
	return models.FromDomainEmployee(updated), nil
}
