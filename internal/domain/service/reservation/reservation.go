package reservation

import (
	"context"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/value"
	"gift_registry/pkg/contextx"
	"gift_registry/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// GiftRepository — гарантированно атомарные переходы флага reserved.
// Проверка и запись выполняются одним шагом против хранилища; ровно один
// из конкурентных вызовов получает успех, остальные — конфликт.
type GiftRepository interface {
	Reserve(ctx context.Context, id int64) error
	Unreserve(ctx context.Context, id int64) error
}

// Service — переходы резервирования для обоих уровней доступа.
// Других путей переключить reserved, кроме административного
// принудительного override в каталоге, нет.
type Service struct {
	gifts GiftRepository
}

func NewService(gifts GiftRepository) *Service {
	return &Service{gifts: gifts}
}

// Reserve переводит подарок в занятые. Конфликт, если уже занят.
func (s *Service) Reserve(ctx context.Context, tier value.Tier, giftID int64) error {
	if !tier.Valid() {
		return domain.NewError(errcodes.AccessTokenInvalid, "invalid access token")
	}

	if err := s.gifts.Reserve(ctx, giftID); err != nil {
		if domain.HasCode(err, errcodes.GiftAlreadyReserved) {
			conflictsTotal.WithLabelValues(transitionReserve).Inc()
			logger(ctx).Info("reservation conflict", "gift_id", giftID)
		}
		return err
	}

	logger(ctx).Info("gift reserved", "gift_id", giftID)
	return nil
}

// Unreserve снимает резерв. Конфликт, если подарок и так свободен.
func (s *Service) Unreserve(ctx context.Context, tier value.Tier, giftID int64) error {
	if !tier.Valid() {
		return domain.NewError(errcodes.AccessTokenInvalid, "invalid access token")
	}

	if err := s.gifts.Unreserve(ctx, giftID); err != nil {
		if domain.HasCode(err, errcodes.GiftNotReserved) {
			conflictsTotal.WithLabelValues(transitionUnreserve).Inc()
			logger(ctx).Info("unreserve conflict", "gift_id", giftID)
		}
		return err
	}

	logger(ctx).Info("gift unreserved", "gift_id", giftID)
	return nil
}
