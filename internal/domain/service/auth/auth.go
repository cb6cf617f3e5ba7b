package auth

import "gift_registry/internal/domain/value"

// Resolver сопоставляет предъявленный токен уровню доступа.
// Токены фиксируются при старте, никакого состояния между запросами.
type Resolver struct {
	guestToken string
	adminToken string
}

// NewResolver создаёт резолвер. Гостевой токен обязателен, админский
// может отсутствовать — тогда административные операции недостижимы.
func NewResolver(guestToken, adminToken string) *Resolver {
	return &Resolver{
		guestToken: guestToken,
		adminToken: adminToken,
	}
}

// Resolve возвращает уровень доступа для предъявленного токена.
// Админский токен проверяется первым: если оба настроены одинаковыми,
// совпадение трактуется как админ.
func (r *Resolver) Resolve(credential string) value.Tier {
	if credential == "" {
		return value.TierUnauthorized
	}

	switch credential {
	case r.adminToken:
		return value.TierAdmin
	case r.guestToken:
		return value.TierGuest
	default:
		return value.TierUnauthorized
	}
}
