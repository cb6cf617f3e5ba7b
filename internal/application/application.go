package application

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"gift_registry/internal/config"
	"gift_registry/internal/domain/service/auth"
	"gift_registry/internal/domain/service/catalog"
	"gift_registry/internal/domain/service/reservation"
	"gift_registry/internal/infrastructure/assetstore"
	"gift_registry/internal/infrastructure/persistence"
	"gift_registry/internal/server"
	"gift_registry/pkg/application/connectors"
	"gift_registry/pkg/application/modules"
	"gift_registry/pkg/contextx"
	"gift_registry/pkg/logx"
	"gift_registry/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func Run(ctx context.Context) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 3. Repositories & asset store
	giftRepo := persistence.NewGiftRepository(db)
	eventInfoRepo := persistence.NewEventInfoRepository(db)

	assets, err := assetstore.NewFileStore(cfg.Storage.Root)
	if err != nil {
		return fmt.Errorf("asset store: %w", err)
	}

	// 4. Services
	resolver := auth.NewResolver(cfg.Auth.GuestToken, cfg.Auth.AdminToken)
	reservationService := reservation.NewService(giftRepo)
	catalogService := catalog.NewService(giftRepo, eventInfoRepo, assets)

	// 5. HTTP surface
	srv := server.NewServer(
		server.NewAuthServer(),
		server.NewCatalogServer(catalogService),
		server.NewGiftServer(reservationService, catalogService),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTP.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-Access-Token"},
			AllowCredentials: true,
		}),
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
		server.AccessTier(resolver),
	)
	srv.RegisterRoutes(router)
	server.RegisterStatic(router, assets.Dir())

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 6. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	return g.Wait()
}
