package reservation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gift_registry/internal/domain"
	"gift_registry/internal/domain/service/reservation"
	"gift_registry/internal/domain/value"
	"gift_registry/pkg/errcodes"
)

// fakeGiftRepo повторяет контракт условного UPDATE: проверка и запись
// флага под одним замком.
type fakeGiftRepo struct {
	mu       sync.Mutex
	reserved map[int64]bool
}

func newFakeGiftRepo(ids ...int64) *fakeGiftRepo {
	repo := &fakeGiftRepo{reserved: make(map[int64]bool)}
	for _, id := range ids {
		repo.reserved[id] = false
	}
	return repo
}

func (f *fakeGiftRepo) Reserve(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.reserved[id]
	if !ok {
		return domain.NewError(errcodes.GiftNotFound, "gift not found")
	}
	if current {
		return domain.NewError(errcodes.GiftAlreadyReserved, "gift already reserved")
	}

	f.reserved[id] = true
	return nil
}

func (f *fakeGiftRepo) Unreserve(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.reserved[id]
	if !ok {
		return domain.NewError(errcodes.GiftNotFound, "gift not found")
	}
	if !current {
		return domain.NewError(errcodes.GiftNotReserved, "gift is not reserved")
	}

	f.reserved[id] = false
	return nil
}

func TestReserveNotFound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := reservation.NewService(newFakeGiftRepo())

	err := svc.Reserve(ctx, value.TierGuest, 404)
	rq.True(domain.HasCode(err, errcodes.GiftNotFound))

	err = svc.Unreserve(ctx, value.TierGuest, 404)
	rq.True(domain.HasCode(err, errcodes.GiftNotFound))
}

func TestReserveRejectsInvalidTier(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newFakeGiftRepo(1)
	svc := reservation.NewService(repo)

	err := svc.Reserve(ctx, value.TierUnauthorized, 1)
	rq.True(domain.HasCode(err, errcodes.AccessTokenInvalid))

	// Хранилище не трогали.
	rq.False(repo.reserved[1])
}

func TestReserveTransitions(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := reservation.NewService(newFakeGiftRepo(1))

	// Второй Reserve подряд — конфликт.
	rq.NoError(svc.Reserve(ctx, value.TierGuest, 1))
	err := svc.Reserve(ctx, value.TierGuest, 1)
	rq.True(domain.HasCode(err, errcodes.GiftAlreadyReserved))

	// Снятие работает один раз.
	rq.NoError(svc.Unreserve(ctx, value.TierGuest, 1))
	err = svc.Unreserve(ctx, value.TierGuest, 1)
	rq.True(domain.HasCode(err, errcodes.GiftNotReserved))
}

func TestReserveAdminTierAllowed(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := reservation.NewService(newFakeGiftRepo(7))

	rq.NoError(svc.Reserve(ctx, value.TierAdmin, 7))
}

func TestReserveConcurrentSingleWinner(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	const callers = 50

	repo := newFakeGiftRepo(1)
	svc := reservation.NewService(repo)

	var (
		wg        sync.WaitGroup
		successes int64
		conflicts int64
		mu        sync.Mutex
	)

	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := svc.Reserve(ctx, value.TierGuest, 1)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case domain.HasCode(err, errcodes.GiftAlreadyReserved):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	rq.EqualValues(1, successes)
	rq.EqualValues(callers-1, conflicts)
	rq.True(repo.reserved[1])
}
