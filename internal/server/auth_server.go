package server

import (
	"net/http"

	"gift_registry/internal/domain"
	"gift_registry/pkg/errcodes"
	"gift_registry/pkg/httpx/reply"
	"gift_registry/pkg/rest"
)

// AuthServer — рукопожатие фронтенда: проверить токен, узнать уровень.
type AuthServer struct{}

func NewAuthServer() AuthServer {
	return AuthServer{}
}

func (s AuthServer) postV1Auth(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	tier := tierFromContext(ctx)

	if !tier.Valid() {
		return asFailure(domain.NewError(errcodes.AccessTokenInvalid, "invalid access token"))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AuthStatus{
		Status:  "authenticated",
		IsAdmin: tier.IsAdmin(),
	})

	return nil
}
