// Одноразовое сидирование: единственная строка event_info и стартовый
// набор подарков. Повторный запуск ничего не перезаписывает.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"gift_registry/internal/config"
	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/value"
	"gift_registry/internal/infrastructure/persistence"
	"gift_registry/pkg/application/connectors"
)

func main() {
	ctx := context.Background()

	log := slog.New(tint.NewHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}

	log.Info("seed finished")
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	eventInfoRepo := persistence.NewEventInfoRepository(db)
	giftRepo := persistence.NewGiftRepository(db)

	if err := eventInfoRepo.Seed(ctx, entity.EventInfo{
		PlaceInfo:     "Информация о месте будет позже",
		DressCodeInfo: "Информация о дресс-коде будет позже",
	}); err != nil {
		return err
	}

	existing, err := giftRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("catalog already seeded", "count", len(existing))
		return nil
	}

	starter := []entity.Gift{
		{
			Name:    "Самоцветы",
			Details: "из саркофага мага Радомира",
			Grade:   value.GradeLegendary,
		},
	}

	for i := range starter {
		if err := giftRepo.Create(ctx, &starter[i]); err != nil {
			return err
		}
		log.Info("gift seeded", "gift_id", starter[i].ID, "name", starter[i].Name)
	}

	return nil
}
