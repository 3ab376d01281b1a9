package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

// ErrStorage возвращается при ошибке нижележащего хранилища
var ErrStorage = errors.New("counter.repository: storage error")

// Repository монотонные счётчики по видам сущностей для генерации
// человекочитаемых номеров. Инкремент выполняется получением и
// сохранением записи; вызывающая сторона оборачивает минтинг вместе
// с созданием сущности в DoSerializable.
type Repository struct {
	store records.Store
}

// NewRepository создает репозиторий счётчиков
func NewRepository(store records.Store) *Repository {
	return &Repository{store: store}
}

// Next возвращает следующее значение счётчика kind
func (r *Repository) Next(ctx context.Context, kind string) (int64, error) {
	var c domain.Counter
	c.Kind = kind

	env, err := r.store.Get(ctx, records.TableCounters, kind)
	switch {
	case err == nil:
		if err := json.Unmarshal(env.Data, &c); err != nil {
			return 0, fmt.Errorf("%w: Next - kind=%s: %v", ErrStorage, kind, err)
		}
	case errors.Is(err, records.ErrRecordNotFound):
		// Первый номер для этого вида сущностей
	default:
		return 0, fmt.Errorf("%w: Next - kind=%s: %v", ErrStorage, kind, err)
	}

	c.Value++
	if err := r.store.Save(ctx, records.TableCounters, kind, &c); err != nil {
		return 0, fmt.Errorf("%w: Next - kind=%s: %v", ErrStorage, kind, err)
	}
	return c.Value, nil
}

// MintID возвращает следующий человекочитаемый номер: prefix_NNN
func (r *Repository) MintID(ctx context.Context, kind, prefix string) (string, error) {
	n, err := r.Next(ctx, kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%03d", prefix, n), nil
}
