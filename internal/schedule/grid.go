package schedule

import (
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// GridConfig границы и шаг визуальной сетки времени
type GridConfig struct {
	DayStart    types.TimeString
	DayEnd      types.TimeString
	StepMinutes int
}

// DefaultGridConfig сетка по умолчанию: 06:00..23:30 с шагом 30 минут, 36 меток
func DefaultGridConfig() GridConfig {
	return GridConfig{
		DayStart:    types.TimeString(domain.DefaultGridDayStart),
		DayEnd:      types.TimeString(domain.DefaultGridDayEnd),
		StepMinutes: domain.DefaultGridStepMinutes,
	}
}

// Validate проверяет границы сетки
func (c GridConfig) Validate() error {
	if err := c.DayStart.Validate(); err != nil {
		return fmt.Errorf("grid day start: %v", err)
	}
	if err := c.DayEnd.Validate(); err != nil {
		return fmt.Errorf("grid day end: %v", err)
	}
	if c.StepMinutes <= 0 {
		return fmt.Errorf("grid step must be positive, got %d", c.StepMinutes)
	}
	if c.DayEnd.IsBefore(c.DayStart) {
		return fmt.Errorf("grid day end %s must not be before day start %s", c.DayEnd, c.DayStart)
	}
	return nil
}

// Grid генерирует упорядоченный список меток сетки от DayStart до DayEnd
// включительно. Сетка не зависит от рабочих часов сотрудников - это
// визуальный каркас, на который затем проецируется доступность.
func Grid(cfg GridConfig) ([]types.TimeString, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start, err := cfg.DayStart.Minutes()
	if err != nil {
		return nil, err
	}
	end, err := cfg.DayEnd.Minutes()
	if err != nil {
		return nil, err
	}

	labels := make([]types.TimeString, 0, (end-start)/cfg.StepMinutes+1)
	for m := start; m <= end; m += cfg.StepMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, nil
}
