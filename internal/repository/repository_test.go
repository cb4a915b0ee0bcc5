package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/cebip/internal/cryptox"
	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 12, 22, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := kv.OpenSQLite(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestRepo(t *testing.T, opts ...Option) (*Repository, *kv.SQLiteStore) {
	t.Helper()
	store := newTestStore(t)
	seq := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { seq++; return fmt.Sprintf("new-%d", seq) }),
	}
	return New(store, append(base, opts...)...), store
}

type fakeSlot struct {
	current *models.Session
	saved   []models.Session
	saveErr error
}

func (f *fakeSlot) Current(context.Context) *models.Session { return f.current }

func (f *fakeSlot) Save(_ context.Context, s models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	f.current = &s
	return nil
}

func TestGetCollections_AbsentIsEmpty(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	users := r.GetUsers(ctx)
	require.NotNil(t, users)
	assert.Empty(t, users)
	assert.Empty(t, r.GetBenefits(ctx))
	assert.Empty(t, r.GetPromotions(ctx))
}

func TestGetCollections_MalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	require.NoError(t, store.Set(ctx, KeyBenefits, []byte(`{"broken"`)))
	require.NoError(t, store.Set(ctx, KeyUsers, []byte(`null`)))

	assert.Empty(t, r.GetBenefits(ctx))
	assert.NotNil(t, r.GetUsers(ctx))
}

func TestSaveGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	benefits := defaultBenefits()[:2]
	require.NoError(t, r.SaveBenefits(ctx, benefits))
	assert.Equal(t, benefits, r.GetBenefits(ctx))

	promotions := defaultPromotions()
	require.NoError(t, r.SavePromotions(ctx, promotions))
	assert.Equal(t, promotions, r.GetPromotions(ctx))

	users := []models.User{{
		ID: "u1", Email: "x@example.com", Password: "p", Name: "X",
		Role: models.RoleMember, Status: models.StatusActive,
		CreatedAt: fixedNow, MembershipType: models.MembershipVIP,
	}}
	require.NoError(t, r.SaveUsers(ctx, users))
	assert.Equal(t, users, r.GetUsers(ctx))
}

func TestInitializeDefaultData(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds both and is idempotent", func(t *testing.T) {
		r, _ := newTestRepo(t)

		require.NoError(t, r.InitializeDefaultData(ctx))
		require.NoError(t, r.InitializeDefaultData(ctx))

		benefits := r.GetBenefits(ctx)
		promotions := r.GetPromotions(ctx)
		require.Len(t, benefits, 8)
		require.Len(t, promotions, 4)

		assert.Equal(t, "Descuentos en Restaurantes", benefits[0].Title)
		assert.Equal(t, "Gastronomía", benefits[0].Category)
		assert.True(t, benefits[0].Featured)
		assert.Equal(t, "Tecnología y Servicios", benefits[7].Title)

		assert.Equal(t, "Black Friday Premium", promotions[0].Title)
		assert.Equal(t, time.Date(2024, 11, 30, 23, 59, 59, 0, time.UTC), promotions[0].EndDate)
		left, limited := promotions[0].Remaining()
		assert.True(t, limited)
		assert.Equal(t, 77, left)
	})

	t.Run("collections are checked independently", func(t *testing.T) {
		r, _ := newTestRepo(t)
		own := []models.Promotion{{ID: "p", Title: "Own"}}
		require.NoError(t, r.SavePromotions(ctx, own))

		require.NoError(t, r.InitializeDefaultData(ctx))

		assert.Len(t, r.GetBenefits(ctx), 8)
		assert.Equal(t, own, r.GetPromotions(ctx))
	})
}

func TestInitializeUsers(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	require.NoError(t, r.InitializeUsers(ctx))
	first := r.GetUsers(ctx)
	require.Len(t, first, 6)

	admin := first[0]
	assert.Equal(t, "admin@cebip.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	require.NotNil(t, admin.LastLogin)
	assert.Equal(t, fixedNow, *admin.LastLogin)
	assert.True(t, cryptox.IsHashed(admin.Password))
	assert.True(t, cryptox.VerifyPassword(admin.Password, []byte("admin123")))

	byEmail := map[string]models.User{}
	for _, u := range first {
		byEmail[u.Email] = u
	}
	assert.Equal(t, models.StatusSuspended, byEmail["ana@example.com"].Status)
	assert.Equal(t, models.StatusInactive, byEmail["luis@example.com"].Status)
	assert.Equal(t, models.MembershipVIP, byEmail["luis@example.com"].MembershipType)

	require.NoError(t, r.InitializeUsers(ctx))
	assert.Equal(t, first, r.GetUsers(ctx))
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	u, err := r.CreateUser(ctx, models.NewUser{
		Email: "new@example.com", Password: "secret", Name: "New Member",
		Role: models.RoleMember, Status: models.StatusActive, MembershipType: models.MembershipBasic,
	})
	require.NoError(t, err)

	assert.Equal(t, "new-1", u.ID)
	assert.Equal(t, fixedNow, u.CreatedAt)
	assert.True(t, cryptox.VerifyPassword(u.Password, []byte("secret")))

	users := r.GetUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, u, users[0])

	u2, err := r.CreateUser(ctx, models.NewUser{Email: "other@example.com", Password: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, u.ID, u2.ID)
	assert.Len(t, r.GetUsers(ctx), 2)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		r, _ := newTestRepo(t)
		u, err := r.UpdateUser(ctx, "nope", models.UserPatch{})
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("merges fields and hashes password", func(t *testing.T) {
		r, _ := newTestRepo(t)
		created, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com", Password: "old", Name: "A", Status: models.StatusActive})
		require.NoError(t, err)

		name := "Renamed"
		status := models.StatusSuspended
		pw := "new"
		u, err := r.UpdateUser(ctx, created.ID, models.UserPatch{Name: &name, Status: &status, Password: &pw})
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.Equal(t, "Renamed", u.Name)
		assert.Equal(t, models.StatusSuspended, u.Status)
		assert.Equal(t, "a@example.com", u.Email)
		assert.True(t, cryptox.VerifyPassword(u.Password, []byte("new")))
		assert.Equal(t, *u, r.GetUsers(ctx)[0])
	})

	t.Run("refreshes the signed-in session", func(t *testing.T) {
		r, _ := newTestRepo(t)
		created, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com", Password: "pw", Name: "A"})
		require.NoError(t, err)

		slot := &fakeSlot{current: &models.Session{User: created, Token: "tok"}}
		r.BindSession(slot)

		name := "B"
		u, err := r.UpdateUser(ctx, created.ID, models.UserPatch{Name: &name})
		require.NoError(t, err)

		require.Len(t, slot.saved, 1)
		assert.Equal(t, *u, slot.saved[0].User)
		assert.Equal(t, "tok", slot.saved[0].Token)
	})

	t.Run("other users leave the session alone", func(t *testing.T) {
		r, _ := newTestRepo(t)
		a, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com"})
		require.NoError(t, err)
		b, err := r.CreateUser(ctx, models.NewUser{Email: "b@example.com"})
		require.NoError(t, err)

		slot := &fakeSlot{current: &models.Session{User: a, Token: "tok"}}
		r.BindSession(slot)

		name := "B"
		_, err = r.UpdateUser(ctx, b.ID, models.UserPatch{Name: &name})
		require.NoError(t, err)
		assert.Empty(t, slot.saved)
	})

	t.Run("session write failure is reported", func(t *testing.T) {
		r, _ := newTestRepo(t)
		a, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com"})
		require.NoError(t, err)

		boom := errors.New("boom")
		r.BindSession(&fakeSlot{current: &models.Session{User: a}, saveErr: boom})

		name := "B"
		_, err = r.UpdateUser(ctx, a.ID, models.UserPatch{Name: &name})
		require.ErrorIs(t, err, boom)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	a, err := r.CreateUser(ctx, models.NewUser{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = r.CreateUser(ctx, models.NewUser{Email: "b@example.com"})
	require.NoError(t, err)

	ok, err := r.DeleteUser(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, r.GetUsers(ctx), 2)

	ok, err = r.DeleteUser(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	users := r.GetUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "b@example.com", users[0].Email)
}
