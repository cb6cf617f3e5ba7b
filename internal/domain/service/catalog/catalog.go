package catalog

import (
	"context"
	"strings"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/value"
	"gift_registry/pkg/contextx"
	"gift_registry/pkg/errcodes"
	"gift_registry/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type GiftRepository interface {
	List(ctx context.Context) ([]entity.Gift, error)
	GetByID(ctx context.Context, id int64) (*entity.Gift, error)
	Create(ctx context.Context, gift *entity.Gift) error
	Update(ctx context.Context, id int64, patch entity.GiftPatch) (*entity.Gift, error)
	Delete(ctx context.Context, id int64) error
}

type EventInfoRepository interface {
	Get(ctx context.Context) (*entity.EventInfo, error)
	Update(ctx context.Context, info entity.EventInfo) error
}

// AssetStore — внешний владелец блобов изображений. Ссылки непрозрачные,
// удаление идемпотентно.
type AssetStore interface {
	Store(data []byte, ext string) (string, error)
	Replace(oldRef string, data []byte, ext string) (string, error)
	Delete(ref string) error
}

// ImageUpload — присланный блоб изображения с подсказкой расширения.
type ImageUpload struct {
	Data []byte
	Ext  string
}

// CreateGiftInput — поля создания. Обязательно только имя.
type CreateGiftInput struct {
	Name    string
	Details string
	Link    string
	Grade   string
	Image   *ImageUpload
}

// UpdateGiftInput — разреженное обновление: применяются только ненулевые
// указатели. Reserved — административный override в обход гарда.
type UpdateGiftInput struct {
	Name     *string
	Details  *string
	Link     *string
	Grade    *string
	Reserved *bool
	Image    *ImageUpload
}

// Service — административные операции каталога и чтение витрины.
type Service struct {
	gifts     GiftRepository
	eventInfo EventInfoRepository
	assets    AssetStore
}

func NewService(
	gifts GiftRepository,
	eventInfo EventInfoRepository,
	assets AssetStore,
) *Service {
	return &Service{
		gifts:     gifts,
		eventInfo: eventInfo,
		assets:    assets,
	}
}

// GetCatalog отдаёт витрину: подарки и информацию о событии.
// Доступно любому действительному токену.
func (s *Service) GetCatalog(ctx context.Context, tier value.Tier) (*entity.Catalog, error) {
	if !tier.Valid() {
		return nil, domain.NewError(errcodes.AccessTokenInvalid, "invalid access token")
	}

	info, err := s.eventInfo.Get(ctx)
	if err != nil {
		return nil, err
	}

	gifts, err := s.gifts.List(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Catalog{
		Gifts:         gifts,
		PlaceInfo:     info.PlaceInfo,
		DressCodeInfo: info.DressCodeInfo,
	}, nil
}

// CreateGift добавляет позицию каталога. Только админ.
// Ассет пишется до того, как ссылка попадёт в запись.
func (s *Service) CreateGift(ctx context.Context, tier value.Tier, input CreateGiftInput) (*entity.Gift, error) {
	if err := requireAdmin(tier); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewError(errcodes.GiftNameRequired, "gift name is required")
	}

	grade, err := value.ParseGrade(input.Grade)
	if err != nil {
		return nil, err
	}

	gift := &entity.Gift{
		Name:    strings.TrimSpace(input.Name),
		Details: input.Details,
		Link:    input.Link,
		Grade:   grade,
	}

	if input.Image != nil {
		ref, err := s.assets.Store(input.Image.Data, input.Image.Ext)
		if err != nil {
			return nil, err
		}
		gift.Image = ref
	}

	if err := s.gifts.Create(ctx, gift); err != nil {
		// Запись не состоялась — ссылка не должна осиротеть.
		if gift.Image != "" {
			if delErr := s.assets.Delete(gift.Image); delErr != nil {
				logger(ctx).Warn("orphaned asset cleanup failed", logx.Error(delErr))
			}
		}
		return nil, err
	}

	logger(ctx).Info("gift created", "gift_id", gift.ID, "grade", gift.Grade.String())
	return gift, nil
}

// UpdateGift применяет разреженный набор изменений. Только админ.
// Новая картинка заменяет старую: старый блоб удаляется после записи нового.
func (s *Service) UpdateGift(ctx context.Context, tier value.Tier, id int64, input UpdateGiftInput) (*entity.Gift, error) {
	if err := requireAdmin(tier); err != nil {
		return nil, err
	}

	patch := entity.GiftPatch{
		Name:     input.Name,
		Details:  input.Details,
		Link:     input.Link,
		Reserved: input.Reserved,
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domain.NewError(errcodes.GiftNameRequired, "gift name is required")
	}

	if input.Grade != nil {
		grade, err := value.ParseGrade(*input.Grade)
		if err != nil {
			return nil, err
		}
		patch.Grade = &grade
	}

	var oldImage string
	if input.Image != nil {
		current, err := s.gifts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		oldImage = current.Image

		ref, err := s.assets.Store(input.Image.Data, input.Image.Ext)
		if err != nil {
			return nil, err
		}
		patch.Image = &ref
	}

	updated, err := s.gifts.Update(ctx, id, patch)
	if err != nil {
		if patch.Image != nil {
			if delErr := s.assets.Delete(*patch.Image); delErr != nil {
				logger(ctx).Warn("orphaned asset cleanup failed", logx.Error(delErr))
			}
		}
		return nil, err
	}

	// Старый блоб больше никем не упоминается.
	if patch.Image != nil && oldImage != "" {
		if delErr := s.assets.Delete(oldImage); delErr != nil {
			logger(ctx).Warn("stale asset cleanup failed", "gift_id", id, logx.Error(delErr))
		}
	}

	if input.Reserved != nil {
		logger(ctx).Info("admin reservation override", "gift_id", id, "reserved", *input.Reserved)
	}

	return updated, nil
}

// DeleteGift удаляет запись и её ассет. Только админ.
// Неудача удаления блоба — предупреждение, запись всё равно удаляется.
func (s *Service) DeleteGift(ctx context.Context, tier value.Tier, id int64) error {
	if err := requireAdmin(tier); err != nil {
		return err
	}

	gift, err := s.gifts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gifts.Delete(ctx, id); err != nil {
		return err
	}

	if gift.Image != "" {
		if delErr := s.assets.Delete(gift.Image); delErr != nil {
			logger(ctx).Warn("asset cleanup failed", "gift_id", id, logx.Error(delErr))
		}
	}

	logger(ctx).Info("gift deleted", "gift_id", id)
	return nil
}

// UpdateEventInfo редактирует тексты о событии. Только админ.
func (s *Service) UpdateEventInfo(ctx context.Context, tier value.Tier, info entity.EventInfo) error {
	if err := requireAdmin(tier); err != nil {
		return err
	}

	if strings.TrimSpace(info.PlaceInfo) == "" || strings.TrimSpace(info.DressCodeInfo) == "" {
		return domain.NewError(errcodes.EventInfoIncomplete, "both texts are required")
	}

	return s.eventInfo.Update(ctx, info)
}

func requireAdmin(tier value.Tier) error {
	if !tier.Valid() {
		return domain.NewError(errcodes.AccessTokenInvalid, "invalid access token")
	}
	if !tier.IsAdmin() {
		return domain.NewError(errcodes.Forbidden, "admin access required")
	}
	return nil
}
