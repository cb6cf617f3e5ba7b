package persistence

import (
	"database/sql"
	"time"

	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/value"
)

// giftSchema — внутренняя структура для маппинга строки БД.
type giftSchema struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Details   sql.NullString `db:"details"`
	Link      sql.NullString `db:"link"`
	Image     sql.NullString `db:"image"`
	Grade     string         `db:"grade"`
	Reserved  bool           `db:"reserved"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (s *giftSchema) toDomain() *entity.Gift {
	return &entity.Gift{
		ID:        s.ID,
		Name:      s.Name,
		Details:   s.Details.String,
		Link:      s.Link.String,
		Image:     s.Image.String,
		Grade:     value.Grade(s.Grade),
		Reserved:  s.Reserved,
		UpdatedAt: s.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// eventInfoSchema — представление таблицы event_info (одна строка, id = 1).
type eventInfoSchema struct {
	ID            int64  `db:"id"`
	PlaceInfo     string `db:"place_info"`
	DressCodeInfo string `db:"dress_code_info"`
}

func (s *eventInfoSchema) toDomain() *entity.EventInfo {
	return &entity.EventInfo{
		PlaceInfo:     s.PlaceInfo,
		DressCodeInfo: s.DressCodeInfo,
	}
}
