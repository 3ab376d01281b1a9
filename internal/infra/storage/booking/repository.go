package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
	"github.com/v-lavrov/RS-SchedulerService/pkg/ptr"
)

// Repository репозиторий заявок поверх хранилища записей.
// Ключ записи составной (сотрудник + номер заявки): выборка заявок
// сотрудника - это запрос по вхождению его идентификатора в ключ.
type Repository struct {
	store records.Store
	clock func() time.Time
}

// NewRepository создает репозиторий заявок
func NewRepository(store records.Store) *Repository {
	return &Repository{store: store, clock: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if err := validate(b); err != nil {
		return nil, err
	}

	now := r.clock().UTC().Truncate(time.Second)
	b.CreatedAt = now
	b.UpdatedAt = now

	key := records.BookingKey(b.EmployeeID, b.ID)
	if err := r.store.Save(ctx, records.TableBookings, key, b); err != nil {
		return nil, fmt.Errorf("%w: Create - id=%s: %v", ErrStorage, b.ID, err)
	}
	return b, nil
}

// Update сохраняет изменённую заявку. prevEmployeeID - сотрудник, под
// которым заявка хранилась до изменения: при переносе на другого
// сотрудника запись сохраняется под новым ключом, затем старый ключ
// удаляется (номер заявки при этом не меняется).
func (r *Repository) Update(ctx context.Context, b *domain.Booking, prevEmployeeID string) (*domain.Booking, error) {
	if err := validate(b); err != nil {
		return nil, err
	}

	b.UpdatedAt = r.clock().UTC().Truncate(time.Second)

	key := records.BookingKey(b.EmployeeID, b.ID)
	if err := r.store.Save(ctx, records.TableBookings, key, b); err != nil {
		return nil, fmt.Errorf("%w: Update - id=%s: %v", ErrStorage, b.ID, err)
	}

	// Сначала сохраняем под новым ключом, потом удаляем старый:
	// при сбое между шагами заявка не теряется
	if prevEmployeeID != "" && prevEmployeeID != b.EmployeeID {
		oldKey := records.BookingKey(prevEmployeeID, b.ID)
		if err := r.store.Delete(ctx, records.TableBookings, oldKey); err != nil {
			return nil, fmt.Errorf("%w: Update - remove old key id=%s: %v", ErrStorage, b.ID, err)
		}
	}

	return b, nil
}

// GetByID возвращает заявку по номеру
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	envs, err := r.store.QueryByPrefix(ctx, records.TableBookings, id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrStorage, id, err)
	}

	for i := range envs {
		_, bookingID, ok := records.SplitBookingKey(envs[i].Key)
		if !ok || bookingID != id {
			continue
		}
		return decode(&envs[i])
	}
	return nil, ErrBookingNotFound
}

// GetByEmployeeAndDate возвращает заявки сотрудника на дату.
// onlyActive отбрасывает отменённые заявки (они слот не занимают).
func (r *Repository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, onlyActive bool) ([]*domain.Booking, error) {
	from := date
	to := date
	return r.getByEmployee(ctx, employeeID, &from, &to, onlyActive)
}

// GetByEmployee возвращает заявки сотрудника за период; границы опциональны
func (r *Repository) GetByEmployee(ctx context.Context, employeeID string, from, to *time.Time, onlyActive bool) ([]*domain.Booking, error) {
	return r.getByEmployee(ctx, employeeID, from, to, onlyActive)
}

func (r *Repository) getByEmployee(ctx context.Context, employeeID string, from, to *time.Time, onlyActive bool) ([]*domain.Booking, error) {
	envs, err := r.store.QueryByPrefix(ctx, records.TableBookings, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployee - employee=%s: %v", ErrStorage, employeeID, err)
	}

	result := make([]*domain.Booking, 0, len(envs))
	for i := range envs {
		// Вхождение в ключ шире точного совпадения: отбрасываем чужие записи
		keyEmployee, _, ok := records.SplitBookingKey(envs[i].Key)
		if !ok || keyEmployee != employeeID {
			continue
		}

		b, err := decode(&envs[i])
		if err != nil {
			return nil, err
		}

		if onlyActive && !b.IsActive() {
			continue
		}
		if from != nil && b.ScheduledDate.Format(domain.DateFormat) < from.Format(domain.DateFormat) {
			continue
		}
		if to != nil && b.ScheduledDate.Format(domain.DateFormat) > to.Format(domain.DateFormat) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// Cancel отменяет заявку с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) (*domain.Booking, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = domain.StatusCancelled
	if reason != "" {
		b.CancellationReason = ptr.Ptr(reason)
	}
	return r.Update(ctx, b, "")
}

// Delete физически удаляет заявку; для сохранения истории
// предпочтительнее Cancel
func (r *Repository) Delete(ctx context.Context, id string) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	key := records.BookingKey(b.EmployeeID, b.ID)
	if err := r.store.Delete(ctx, records.TableBookings, key); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %v", ErrStorage, id, err)
	}
	return nil
}

func decode(env *records.Envelope) (*domain.Booking, error) {
	var b domain.Booking
	if err := json.Unmarshal(env.Data, &b); err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrInvalidRecord, env.Key, err)
	}
	if err := validate(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func validate(b *domain.Booking) error {
	if b == nil {
		return fmt.Errorf("%w: booking is nil", ErrInvalidRecord)
	}
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if b.EmployeeID == "" {
		return fmt.Errorf("%w: id=%s: employeeId is required", ErrInvalidRecord, b.ID)
	}
	if b.ClientName == "" {
		return fmt.Errorf("%w: id=%s: clientName is required", ErrInvalidRecord, b.ID)
	}
	if b.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: id=%s: scheduledDate is required", ErrInvalidRecord, b.ID)
	}
	if err := b.ScheduledTime.Validate(); err != nil {
		return fmt.Errorf("%w: id=%s: %v", ErrInvalidRecord, b.ID, err)
	}
	if b.EstimatedDuration < domain.MinBookingDurationMinutes {
		return fmt.Errorf("%w: id=%s: duration %d is below minimum %d",
			ErrInvalidRecord, b.ID, b.EstimatedDuration, domain.MinBookingDurationMinutes)
	}
	if _, ok := domain.ParseBookingStatus(string(b.Status)); !ok {
		return fmt.Errorf("%w: id=%s: status %q", ErrInvalidStatus, b.ID, b.Status)
	}
	return nil
}
