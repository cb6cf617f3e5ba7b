package persistence_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/entity"
	"gift_registry/internal/domain/value"
	"gift_registry/internal/infrastructure/persistence"
	"gift_registry/pkg/dbtest"
	"gift_registry/pkg/errcodes"
)

// testDB поднимает подключение к тестовой базе и накатывает схему.
// Без TEST_PG_DSN тесты пропускаются.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DROP TABLE IF EXISTS gifts; DROP TABLE IF EXISTS event_info`)
	require.NoError(t, err)

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_init.sql"))

	return db
}

func TestGiftCRUD(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewGiftRepository(testDB(t))

	gift := &entity.Gift{
		Name:    "Самоцветы",
		Details: "из саркофага",
		Grade:   value.GradeLegendary,
	}
	rq.NoError(repo.Create(ctx, gift))
	rq.NotZero(gift.ID)

	got, err := repo.GetByID(ctx, gift.ID)
	rq.NoError(err)
	rq.Equal("Самоцветы", got.Name)
	rq.Equal(value.GradeLegendary, got.Grade)
	rq.False(got.Reserved)
	rq.Empty(got.Link)

	list, err := repo.List(ctx)
	rq.NoError(err)
	rq.Len(list, 1)

	rq.NoError(repo.Delete(ctx, gift.ID))

	_, err = repo.GetByID(ctx, gift.ID)
	rq.True(domain.HasCode(err, errcodes.GiftNotFound))
	rq.True(domain.HasCode(repo.Delete(ctx, gift.ID), errcodes.GiftNotFound))
}

func TestGiftPartialUpdate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewGiftRepository(testDB(t))

	gift := &entity.Gift{Name: "чайник", Link: "https://example.com/kettle"}
	rq.NoError(repo.Create(ctx, gift))

	name := "чайник керамический"
	updated, err := repo.Update(ctx, gift.ID, entity.GiftPatch{Name: &name})
	rq.NoError(err)
	rq.Equal(name, updated.Name)
	// Незаданные поля патча остаются как были.
	rq.Equal("https://example.com/kettle", updated.Link)
	rq.Equal(value.GradeCommon, updated.Grade)

	// Пустая строка в патче затирает значение.
	empty := ""
	updated, err = repo.Update(ctx, gift.ID, entity.GiftPatch{Link: &empty})
	rq.NoError(err)
	rq.Empty(updated.Link)

	_, err = repo.Update(ctx, gift.ID+1000, entity.GiftPatch{Name: &name})
	rq.True(domain.HasCode(err, errcodes.GiftNotFound))
}

func TestReserveTransitions(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewGiftRepository(testDB(t))

	gift := &entity.Gift{Name: "плед"}
	rq.NoError(repo.Create(ctx, gift))

	rq.True(domain.HasCode(repo.Reserve(ctx, gift.ID+1000), errcodes.GiftNotFound))
	rq.True(domain.HasCode(repo.Unreserve(ctx, gift.ID), errcodes.GiftNotReserved))

	rq.NoError(repo.Reserve(ctx, gift.ID))
	rq.True(domain.HasCode(repo.Reserve(ctx, gift.ID), errcodes.GiftAlreadyReserved))

	got, err := repo.GetByID(ctx, gift.ID)
	rq.NoError(err)
	rq.True(got.Reserved)

	rq.NoError(repo.Unreserve(ctx, gift.ID))
	rq.True(domain.HasCode(repo.Unreserve(ctx, gift.ID), errcodes.GiftNotReserved))
}

// Условный UPDATE должен пропустить ровно одного из конкурентных гостей.
func TestReserveConcurrentSingleWinner(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewGiftRepository(testDB(t))

	gift := &entity.Gift{Name: "сервиз"}
	rq.NoError(repo.Create(ctx, gift))

	const callers = 20

	var wg sync.WaitGroup
	results := make(chan error, callers)

	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Reserve(ctx, gift.ID)
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case domain.HasCode(err, errcodes.GiftAlreadyReserved):
			lost++
		default:
			rq.FailNow(fmt.Sprintf("unexpected error: %v", err))
		}
	}

	rq.Equal(1, won)
	rq.Equal(callers-1, lost)

	got, err := repo.GetByID(ctx, gift.ID)
	rq.NoError(err)
	rq.True(got.Reserved)
}

func TestEventInfoSingleton(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewEventInfoRepository(testDB(t))

	_, err := repo.Get(ctx)
	rq.True(domain.HasCode(err, errcodes.EventInfoNotFound))

	rq.NoError(repo.Seed(ctx, entity.EventInfo{PlaceInfo: "place", DressCodeInfo: "dress"}))
	// Повторный Seed не перезаписывает.
	rq.NoError(repo.Seed(ctx, entity.EventInfo{PlaceInfo: "other", DressCodeInfo: "other"}))

	info, err := repo.Get(ctx)
	rq.NoError(err)
	rq.Equal("place", info.PlaceInfo)

	rq.NoError(repo.Update(ctx, entity.EventInfo{PlaceInfo: "new place", DressCodeInfo: "new dress"}))

	info, err = repo.Get(ctx)
	rq.NoError(err)
	rq.Equal("new place", info.PlaceInfo)
	rq.Equal("new dress", info.DressCodeInfo)
}
