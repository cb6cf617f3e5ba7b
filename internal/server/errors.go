package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"gift_registry/internal/domain"
	"gift_registry/pkg/errcodes"
)

// asFailure переводит доменную ошибку в классифицированную, чтобы
// reply.Error сопоставил ей HTTP-статус. Ошибки без доменного кода
// уходят как есть (внутренняя, 500).
func asFailure(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	opts := []failure.Option{
		failure.WithCode(appErr.Code),
		failure.WithDescription(appErr.Message),
	}

	switch appErr.Code {
	case errcodes.NotFound, errcodes.GiftNotFound, errcodes.EventInfoNotFound:
		return failure.NewNotFoundErrorFromError(err, opts...)
	case errcodes.GiftAlreadyReserved, errcodes.GiftNotReserved:
		return failure.NewConflictErrorFromError(err, opts...)
	case errcodes.AccessTokenInvalid:
		return failure.NewUnauthorizedErrorFromError(err, opts...)
	case errcodes.Forbidden:
		return failure.NewForbiddenErrorFromError(err, opts...)
	case errcodes.ValidationError, errcodes.InvalidGiftID, errcodes.InvalidGrade,
		errcodes.GiftNameRequired, errcodes.EventInfoIncomplete:
		return failure.NewInvalidArgumentErrorFromError(err, opts...)
	default:
		return err
	}
}
