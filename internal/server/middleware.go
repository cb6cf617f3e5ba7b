package server

import (
	"context"
	"net/http"

	"gift_registry/internal/domain/value"
)

const headerNameAccessToken = "X-Access-Token" //nolint:gosec // имя заголовка

type tierResolver interface {
	Resolve(credential string) value.Tier
}

type contextKeyTier struct{}

// AccessTier вычисляет уровень доступа по заголовку один раз на запрос.
// Дальше tier передаётся явным аргументом в каждую доменную операцию;
// сам по себе запрос с неизвестным токеном здесь не отклоняется —
// отказ обязан давать каждый вызов ниже.
func AccessTier(resolver tierResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tier := resolver.Resolve(r.Header.Get(headerNameAccessToken))

			ctx := context.WithValue(r.Context(), contextKeyTier{}, tier)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tierFromContext(ctx context.Context) value.Tier {
	tier, ok := ctx.Value(contextKeyTier{}).(value.Tier)
	if !ok {
		return value.TierUnauthorized
	}

	return tier
}
