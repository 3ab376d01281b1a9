package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

// Repository репозиторий сотрудников поверх хранилища записей
type Repository struct {
	store records.Store
	clock func() time.Time
}

// NewRepository создает репозиторий сотрудников
func NewRepository(store records.Store) *Repository {
	return &Repository{store: store, clock: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

// Save сохраняет сотрудника с валидацией на границе хранилища
func (r *Repository) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := validate(e); err != nil {
		return nil, err
	}

	now := r.clock().UTC().Truncate(time.Second)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	if err := r.store.Save(ctx, records.TableEmployees, e.ID, e); err != nil {
		return nil, fmt.Errorf("%w: Save - id=%s: %v", ErrStorage, e.ID, err)
	}
	return e, nil
}

// GetByID возвращает сотрудника по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	env, err := r.store.Get(ctx, records.TableEmployees, id)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrStorage, id, err)
	}
	return decode(env)
}

// List возвращает всех сотрудников; activeOnly отбрасывает неактивных
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error) {
	envs, err := r.store.QueryByPrefix(ctx, records.TableEmployees, "")
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStorage, err)
	}

	result := make([]*domain.Employee, 0, len(envs))
	for i := range envs {
		e, err := decode(&envs[i])
		if err != nil {
			return nil, err
		}
		if activeOnly && !e.IsActive {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func decode(env *records.Envelope) (*domain.Employee, error) {
	var e domain.Employee
	if err := json.Unmarshal(env.Data, &e); err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrInvalidRecord, env.Key, err)
	}
	if err := validate(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func validate(e *domain.Employee) error {
	if e == nil {
		return fmt.Errorf("%w: employee is nil", ErrInvalidRecord)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if e.FirstName == "" && e.LastName == "" {
		return fmt.Errorf("%w: id=%s: name is required", ErrInvalidRecord, e.ID)
	}
	return nil
}
