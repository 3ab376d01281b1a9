package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

// Repository репозиторий шаблонов расписаний. Для каждого сотрудника
// хранится один актуальный шаблон под ключом сотрудника: сохранение
// нового шаблона замещает предыдущий.
type Repository struct {
	store records.Store
	clock func() time.Time
}

// NewRepository создает репозиторий шаблонов расписаний
func NewRepository(store records.Store) *Repository {
	return &Repository{store: store, clock: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

// Save сохраняет шаблон расписания сотрудника
func (r *Repository) Save(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	if tpl == nil {
		return nil, fmt.Errorf("%w: template is nil", ErrInvalidRecord)
	}
	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	now := r.clock().UTC().Truncate(time.Second)
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = now
	}
	tpl.UpdatedAt = now

	if err := r.store.Save(ctx, records.TableSchedules, tpl.EmployeeID, tpl); err != nil {
		return nil, fmt.Errorf("%w: Save - employee=%s: %v", ErrStorage, tpl.EmployeeID, err)
	}
	return tpl, nil
}

// GetByEmployee возвращает актуальный шаблон сотрудника
func (r *Repository) GetByEmployee(ctx context.Context, employeeID string) (*domain.ScheduleTemplate, error) {
	env, err := r.store.Get(ctx, records.TableSchedules, employeeID)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("%w: GetByEmployee - employee=%s: %v", ErrStorage, employeeID, err)
	}

	var tpl domain.ScheduleTemplate
	if err := json.Unmarshal(env.Data, &tpl); err != nil {
		return nil, fmt.Errorf("%w: employee=%s: %v", ErrInvalidRecord, employeeID, err)
	}
	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("%w: employee=%s: %v", ErrInvalidRecord, employeeID, err)
	}
	return &tpl, nil
}
