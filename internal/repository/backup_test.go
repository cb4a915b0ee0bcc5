package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportData(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	require.NoError(t, r.InitializeDefaultData(ctx))

	snap := r.ExportData(ctx)
	assert.Equal(t, fixedNow, snap.ExportDate)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Users)
	assert.Len(t, snap.Benefits, 8)
	assert.Len(t, snap.Promotions, 4)
}

func TestImportData(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces only present collections", func(t *testing.T) {
		r, _ := newTestRepo(t)
		require.NoError(t, r.InitializeDefaultData(ctx))
		users := []models.User{{ID: "u", Email: "u@example.com"}}
		require.NoError(t, r.SaveUsers(ctx, users))

		benefits := []models.Benefit{{ID: "b", Title: "Imported"}}
		require.NoError(t, r.ImportData(ctx, models.ImportData{Benefits: benefits}))

		assert.Equal(t, benefits, r.GetBenefits(ctx))
		assert.Equal(t, users, r.GetUsers(ctx))
		assert.Len(t, r.GetPromotions(ctx), 4)
	})

	t.Run("empty slice clears", func(t *testing.T) {
		r, _ := newTestRepo(t)
		require.NoError(t, r.InitializeDefaultData(ctx))

		require.NoError(t, r.ImportData(ctx, models.ImportData{Promotions: []models.Promotion{}}))
		assert.Empty(t, r.GetPromotions(ctx))
		assert.Len(t, r.GetBenefits(ctx), 8)
	})

	t.Run("export then import restores", func(t *testing.T) {
		r, _ := newTestRepo(t)
		require.NoError(t, r.InitializeDefaultData(ctx))
		_, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)

		snap := r.ExportData(ctx)
		require.NoError(t, r.ResetAllData(ctx))
		require.NoError(t, r.ImportData(ctx, models.ImportData{
			Users: snap.Users, Benefits: snap.Benefits, Promotions: snap.Promotions,
		}))

		assert.Equal(t, snap.Users, r.GetUsers(ctx))
		assert.Equal(t, snap.Benefits, r.GetBenefits(ctx))
		assert.Equal(t, snap.Promotions, r.GetPromotions(ctx))
	})

	t.Run("non-transactional store stops at first failure", func(t *testing.T) {
		boom := errors.New("boom")
		store := &failingStore{data: map[string][]byte{}, failKey: KeyBenefits, err: boom}
		r := New(store)

		err := r.ImportData(ctx, models.ImportData{
			Users:      []models.User{{ID: "u"}},
			Benefits:   []models.Benefit{{ID: "b"}},
			Promotions: []models.Promotion{{ID: "p"}},
		})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, store.data, KeyUsers)
		assert.NotContains(t, store.data, KeyPromotions)
	})
}

func TestResetAllData(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	require.NoError(t, r.InitializeDefaultData(ctx))
	require.NoError(t, r.InitializeUsers(ctx))
	require.NoError(t, store.Set(ctx, "cebip_session", []byte(`{}`)))

	require.NoError(t, r.ResetAllData(ctx))

	for _, key := range []string{KeyUsers, KeyBenefits, KeyPromotions} {
		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v, key)
	}
	v, err := store.Get(ctx, "cebip_session")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)

	// seeding works again afterwards
	require.NoError(t, r.InitializeDefaultData(ctx))
	assert.Len(t, r.GetBenefits(ctx), 8)
}

type failingStore struct {
	data    map[string][]byte
	failKey string
	err     error
}

func (f *failingStore) Get(_ context.Context, k string) ([]byte, error) { return f.data[k], nil }

func (f *failingStore) Set(_ context.Context, k string, v []byte) error {
	if k == f.failKey {
		return f.err
	}
	f.data[k] = v
	return nil
}

func (f *failingStore) Delete(_ context.Context, k string) error {
	delete(f.data, k)
	return nil
}

func (f *failingStore) Close() error { return nil }
