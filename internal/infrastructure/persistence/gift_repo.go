package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/entity"
	"gift_registry/pkg/errcodes"
)

type GiftRepository struct {
	db *sqlx.DB
}

// NewGiftRepository создаёт новый экземпляр репозитория.
func NewGiftRepository(db *sqlx.DB) *GiftRepository {
	return &GiftRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *GiftRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// List возвращает весь каталог в порядке добавления.
func (r *GiftRepository) List(ctx context.Context) ([]entity.Gift, error) {
	query := `
		SELECT id, name, details, link, image, grade, reserved, updated_at
		FROM gifts
		ORDER BY id`

	var schemas []giftSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list gifts")
	}

	gifts := make([]entity.Gift, 0, len(schemas))
	for i := range schemas {
		gifts = append(gifts, *schemas[i].toDomain())
	}

	return gifts, nil
}

// GetByID возвращает подарок по идентификатору.
func (r *GiftRepository) GetByID(ctx context.Context, id int64) (*entity.Gift, error) {
	query := `
		SELECT id, name, details, link, image, grade, reserved, updated_at
		FROM gifts
		WHERE id = $1`

	var schema giftSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get gift")
	}

	return schema.toDomain(), nil
}

// Create сохраняет новый подарок и проставляет выданный базой ID.
func (r *GiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if gift.UpdatedAt.IsZero() {
			gift.UpdatedAt = time.Now()
		}

		query := `
			INSERT INTO gifts (name, details, link, image, grade, reserved, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`

		err := tx.QueryRowxContext(ctx, query,
			gift.Name,
			nullString(gift.Details),
			nullString(gift.Link),
			nullString(gift.Image),
			gift.Grade.String(),
			gift.Reserved,
			gift.UpdatedAt,
		).Scan(&gift.ID)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert gift")
		}

		return nil
	})
}

// Update применяет частичное обновление: только поля, заданные в patch.
// Либо применяются все присланные поля, либо ни одного.
func (r *GiftRepository) Update(ctx context.Context, id int64, patch entity.GiftPatch) (*entity.Gift, error) {
	var updated *entity.Gift

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		// Блокируем строку, чтобы частичное обновление было атомарным
		// относительно конкурентных переходов резервирования.
		query := `
			SELECT id, name, details, link, image, grade, reserved, updated_at
			FROM gifts
			WHERE id = $1
			FOR UPDATE`

		var schema giftSchema
		if err := tx.GetContext(ctx, &schema, query, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.GiftNotFound, "gift not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock gift")
		}

		if patch.Name != nil {
			schema.Name = *patch.Name
		}
		if patch.Details != nil {
			schema.Details = nullString(*patch.Details)
		}
		if patch.Link != nil {
			schema.Link = nullString(*patch.Link)
		}
		if patch.Grade != nil {
			schema.Grade = patch.Grade.String()
		}
		if patch.Reserved != nil {
			schema.Reserved = *patch.Reserved
		}
		if patch.Image != nil {
			schema.Image = nullString(*patch.Image)
		}
		schema.UpdatedAt = time.Now()

		updateQuery := `
			UPDATE gifts SET
				name = :name,
				details = :details,
				link = :link,
				image = :image,
				grade = :grade,
				reserved = :reserved,
				updated_at = :updated_at
			WHERE id = :id`

		if _, err := tx.NamedExecContext(ctx, updateQuery, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update gift")
		}

		updated = schema.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Reserve атомарно переводит reserved false -> true.
// Условный UPDATE: двум конкурентным вызовам не дать обоим увидеть false.
func (r *GiftRepository) Reserve(ctx context.Context, id int64) error {
	return r.setReservedGuarded(ctx, id, true)
}

// Unreserve — симметричный переход true -> false.
func (r *GiftRepository) Unreserve(ctx context.Context, id int64) error {
	return r.setReservedGuarded(ctx, id, false)
}

func (r *GiftRepository) setReservedGuarded(ctx context.Context, id int64, reserved bool) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE gifts
			SET reserved = $1, updated_at = $2
			WHERE id = $3 AND reserved = $4`

		res, err := tx.ExecContext(ctx, query, reserved, time.Now(), id, !reserved)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to switch reservation")
		}

		rows, _ := res.RowsAffected()
		if rows == 0 {
			// Различаем отсутствие строки и проигранную гонку.
			var exists bool
			_ = tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM gifts WHERE id = $1)`, id)
			if !exists {
				return domain.NewError(errcodes.GiftNotFound, "gift not found")
			}
			if reserved {
				return domain.NewError(errcodes.GiftAlreadyReserved, "gift already reserved")
			}
			return domain.NewError(errcodes.GiftNotReserved, "gift is not reserved")
		}

		return nil
	})
}

// Delete удаляет запись каталога.
func (r *GiftRepository) Delete(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return r.execUpdateTx(ctx, tx, `DELETE FROM gifts WHERE id = $1`, id)
	})
}

// execUpdateTx — внутренний метод мутации в рамках транзакции.
func (r *GiftRepository) execUpdateTx(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to execute update")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.GiftNotFound, "gift not found")
	}

	return nil
}
