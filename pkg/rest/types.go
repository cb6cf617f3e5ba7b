// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Gift Позиция каталога подарков
type Gift struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Details  string `json:"details,omitempty"`
	Link     string `json:"link,omitempty"`
	Image    string `json:"image,omitempty"`
	Grade    string `json:"grade"`
	Reserved bool   `json:"reserved"`
}

// Catalog Витрина: подарки и информация о событии
type Catalog struct {
	Gifts         []Gift `json:"gifts"`
	PlaceInfo     string `json:"placeInfo"`
	DressCodeInfo string `json:"dressCodeInfo"`
}

// AuthStatus Ответ на проверку токена
type AuthStatus struct {
	Status  string `json:"status"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// EventInfoUpdate Редактирование текстов о событии
type EventInfoUpdate struct {
	PlaceInfo     string `json:"placeInfo" validate:"required"`
	DressCodeInfo string `json:"dressCodeInfo" validate:"required"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
