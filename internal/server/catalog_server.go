package server

import (
	"context"
	"fmt"
	"net/http"

	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/value"
	"gift_registry/pkg/httpx/reply"
	"gift_registry/pkg/httpx/req"
	"gift_registry/pkg/rest"
)

type catalogReader interface {
	GetCatalog(ctx context.Context, tier value.Tier) (*entity.Catalog, error)
	UpdateEventInfo(ctx context.Context, tier value.Tier, info entity.EventInfo) error
}

// CatalogServer — витрина и редактирование информации о событии.
type CatalogServer struct {
	catalogService catalogReader
}

func NewCatalogServer(catalogService catalogReader) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

func (s CatalogServer) getV1Catalog(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	catalog, err := s.catalogService.GetCatalog(ctx, tierFromContext(ctx))
	if err != nil {
		return asFailure(fmt.Errorf("catalogService.GetCatalog: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCatalog(*catalog))

	return nil
}

func (s CatalogServer) putV1EventInfo(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.EventInfoUpdate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	info := entity.EventInfo{
		PlaceInfo:     request.PlaceInfo,
		DressCodeInfo: request.DressCodeInfo,
	}

	if err := s.catalogService.UpdateEventInfo(ctx, tierFromContext(ctx), info); err != nil {
		return asFailure(fmt.Errorf("catalogService.UpdateEventInfo: %w", err))
	}

	reply.OK(w)

	return nil
}
