package merchant

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshield/smartshield/internal/testutil"
)

func TestPostgresStore_CreateAndGet(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	err := store.Create(ctx, &Merchant{
		Handle:     "Amazon@UPI",
		LegalName:  "Amazon Pay India Pvt Ltd",
		TrustScore: 100,
		Category:   "Shopping",
		Verified:   true,
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, "amazon@upi")
	require.NoError(t, err)
	assert.Equal(t, "amazon@upi", got.Handle)
	assert.Equal(t, 100, got.TrustScore)
	assert.True(t, got.Verified)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = store.Get(ctx, "missing@upi")
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestPostgresStore_DuplicateKeyMapsToExists(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	require.NoError(t, store.Create(ctx, &Merchant{Handle: "dup@upi", LegalName: "First", TrustScore: 50, Category: "Uncategorized"}))

	err := store.Create(ctx, &Merchant{Handle: "DUP@upi", LegalName: "Second", TrustScore: 0, Category: "Fraud"})
	assert.ErrorIs(t, err, ErrMerchantExists)

	got, err := store.Get(ctx, "dup@upi")
	require.NoError(t, err)
	assert.Equal(t, "First", got.LegalName)
}

func TestPostgresStore_OpaqueHandles(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	// Quote/SQL metacharacters are data, never syntax
	hostile := `'; drop table merchants; --`
	require.NoError(t, store.Create(ctx, &Merchant{Handle: hostile, LegalName: "Unknown Merchant", TrustScore: 50, Category: "Uncategorized"}))

	got, err := store.Get(ctx, hostile)
	require.NoError(t, err)
	assert.Equal(t, hostile, got.Handle)

	// Table survived
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostgresStore_ListRecentNewestFirst(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	for _, h := range []string{"first@upi", "second@upi", "third@upi"} {
		require.NoError(t, store.Create(ctx, &Merchant{Handle: h, LegalName: h, TrustScore: 50, Category: "Uncategorized"}))
	}

	got, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "third@upi", got[0].Handle)
	assert.Equal(t, "second@upi", got[1].Handle)
}

func TestPostgresStore_ConcurrentFirstSighting(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Create(ctx, &Merchant{Handle: "race@upi", LegalName: "Unknown Merchant", TrustScore: 50, Category: "Uncategorized"})
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrMerchantExists)
		}
	}
	assert.Equal(t, 1, ok)

	count, _ := store.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestPostgresStore_SeedIdempotent(t *testing.T) {
	db, cleanup := testutil.PGTest(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPostgresStore(db)

	res, err := Seed(ctx, store, KnownScams())
	require.NoError(t, err)
	assert.Equal(t, len(KnownScams()), res.Inserted)

	res, err = Seed(ctx, store, KnownScams())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, len(KnownScams()), res.Skipped)
}
