package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/entity"
	"gift_registry/pkg/errcodes"
)

// singletonID — единственная строка event_info всегда имеет id = 1.
const singletonID = 1

type EventInfoRepository struct {
	db *sqlx.DB
}

func NewEventInfoRepository(db *sqlx.DB) *EventInfoRepository {
	return &EventInfoRepository{db: db}
}

// Get возвращает информацию о событии.
// Отсутствие строки — ошибка конфигурации (сидирование не выполнено).
func (r *EventInfoRepository) Get(ctx context.Context) (*entity.EventInfo, error) {
	query := `SELECT id, place_info, dress_code_info FROM event_info WHERE id = $1`

	var schema eventInfoSchema
	if err := r.db.GetContext(ctx, &schema, query, singletonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.EventInfoNotFound, "event info is not seeded")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get event info")
	}

	return schema.toDomain(), nil
}

// Update редактирует оба текста на месте.
func (r *EventInfoRepository) Update(ctx context.Context, info entity.EventInfo) error {
	query := `
		UPDATE event_info
		SET place_info = $1, dress_code_info = $2
		WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, info.PlaceInfo, info.DressCodeInfo, singletonID)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update event info")
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NewError(errcodes.EventInfoNotFound, "event info is not seeded")
	}

	return nil
}

// Seed создаёт единственную строку, если её ещё нет.
// Повторный запуск сидирования ничего не перезаписывает.
func (r *EventInfoRepository) Seed(ctx context.Context, info entity.EventInfo) error {
	query := `
		INSERT INTO event_info (id, place_info, dress_code_info)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, singletonID, info.PlaceInfo, info.DressCodeInfo); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to seed event info")
	}

	return nil
}
