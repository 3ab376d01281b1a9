package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return fmt.Errorf("%w: employeeID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.ScheduledTime.IsZero() {
		return fmt.Errorf("%w: scheduledTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.ScheduledTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid scheduledTime format: %v", ErrInvalidInput, err)
	}

	if err := validateDuration(req.EstimatedDuration); err != nil {
		return err
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long (max %d characters)",
			ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

// isDateInPast сравнивает только даты, время суток не учитывается
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// validateDuration проверяет, что длительность в допустимых пределах.
// Кратность шагу сетки не обязательна - некратная длительность
// допускается и лишь отмечается в логе.
func validateDuration(minutes int) error {
	if minutes < domain.MinBookingDurationMinutes {
		return fmt.Errorf("%w: estimatedDuration must be at least %d minutes",
			ErrInvalidInput, domain.MinBookingDurationMinutes)
	}

	if minutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: estimatedDuration must not exceed %d minutes",
			ErrInvalidInput, domain.MaxBookingDurationMinutes)
	}

	return nil
}
