package entity

import (
	"time"

	"gift_registry/internal/domain/value"
)

// Gift — позиция каталога подарков.
type Gift struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Details   string      `json:"details,omitempty"`
	Link      string      `json:"link,omitempty"`
	Image     string      `json:"image,omitempty"` // ссылка на ассет, блоб хранится отдельно
	Grade     value.Grade `json:"grade"`
	Reserved  bool        `json:"reserved"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// GiftPatch — частичное обновление: применяются только непустые поля.
// Reserved — административное принудительное выставление флага в обход
// гарда резервирования.
type GiftPatch struct {
	Name     *string
	Details  *string
	Link     *string
	Grade    *value.Grade
	Reserved *bool
	Image    *string
}

// Empty — нечего применять.
func (p GiftPatch) Empty() bool {
	return p.Name == nil && p.Details == nil && p.Link == nil &&
		p.Grade == nil && p.Reserved == nil && p.Image == nil
}
