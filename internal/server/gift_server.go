package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/service/catalog"
	"gift_registry/internal/domain/value"
	"gift_registry/pkg/errcodes"
	"gift_registry/pkg/httpx/reply"
)

// Формы с картинками: 10 МБ в памяти, остальное во временные файлы.
const maxUploadMemory = 10 << 20

type reservationService interface {
	Reserve(ctx context.Context, tier value.Tier, giftID int64) error
	Unreserve(ctx context.Context, tier value.Tier, giftID int64) error
}

type catalogAdmin interface {
	CreateGift(ctx context.Context, tier value.Tier, input catalog.CreateGiftInput) (*entity.Gift, error)
	UpdateGift(ctx context.Context, tier value.Tier, id int64, input catalog.UpdateGiftInput) (*entity.Gift, error)
	DeleteGift(ctx context.Context, tier value.Tier, id int64) error
}

// GiftServer — переходы резервирования и административный CRUD подарков.
type GiftServer struct {
	reservationService reservationService
	catalogService     catalogAdmin
}

func NewGiftServer(
	reservationService reservationService,
	catalogService catalogAdmin,
) GiftServer {
	return GiftServer{
		reservationService: reservationService,
		catalogService:     catalogService,
	}
}

func (s GiftServer) postV1GiftReserve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGiftID(r)
	if err != nil {
		return err
	}

	if err := s.reservationService.Reserve(ctx, tierFromContext(ctx), id); err != nil {
		return asFailure(fmt.Errorf("reservationService.Reserve: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, map[string]string{"status": "reserved"})

	return nil
}

func (s GiftServer) postV1GiftUnreserve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGiftID(r)
	if err != nil {
		return err
	}

	if err := s.reservationService.Unreserve(ctx, tierFromContext(ctx), id); err != nil {
		return asFailure(fmt.Errorf("reservationService.Unreserve: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, map[string]string{"status": "unreserved"})

	return nil
}

func (s GiftServer) postV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.ParseMultipartForm: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	input := catalog.CreateGiftInput{
		Name:    r.FormValue("name"),
		Details: r.FormValue("details"),
		Link:    r.FormValue("link"),
		Grade:   r.FormValue("grade"),
	}

	image, err := readImage(r)
	if err != nil {
		return err
	}
	input.Image = image

	gift, err := s.catalogService.CreateGift(ctx, tierFromContext(ctx), input)
	if err != nil {
		return asFailure(fmt.Errorf("catalogService.CreateGift: %w", err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTGift(*gift))

	return nil
}

func (s GiftServer) putV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGiftID(r)
	if err != nil {
		return err
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.ParseMultipartForm: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	input := catalog.UpdateGiftInput{
		Name:    formValue(r, "name"),
		Details: formValue(r, "details"),
		Link:    formValue(r, "link"),
		Grade:   formValue(r, "grade"),
	}

	if raw := formValue(r, "reserved"); raw != nil {
		reserved, err := strconv.ParseBool(*raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("strconv.ParseBool: %w", err),
				failure.WithCode(errcodes.ValidationError),
			)
		}
		input.Reserved = &reserved
	}

	image, err := readImage(r)
	if err != nil {
		return err
	}
	input.Image = image

	gift, err := s.catalogService.UpdateGift(ctx, tierFromContext(ctx), id, input)
	if err != nil {
		return asFailure(fmt.Errorf("catalogService.UpdateGift: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGift(*gift))

	return nil
}

func (s GiftServer) deleteV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseGiftID(r)
	if err != nil {
		return err
	}

	if err := s.catalogService.DeleteGift(ctx, tierFromContext(ctx), id); err != nil {
		return asFailure(fmt.Errorf("catalogService.DeleteGift: %w", err))
	}

	reply.NoContent(w)

	return nil
}

func parseGiftID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.InvalidGiftID),
		)
	}

	return id, nil
}

// formValue различает отсутствующее поле и пустое значение:
// для разреженного обновления это разные вещи.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}

	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}

func readImage(r *http.Request) (*catalog.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.FormFile: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return &catalog.ImageUpload{
		Data: data,
		Ext:  filepath.Ext(header.Filename),
	}, nil
}
