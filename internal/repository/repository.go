// Package repository owns the three CEBIP collections (users, benefits and
// promotions) stored in a kv.Store.
//
// Every Save replaces a whole collection: concurrent writers from separate
// processes race and the last write wins.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cebip/internal/cryptox"
	"github.com/dmitrijs2005/cebip/internal/logging"
	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/storage/kv"
	"github.com/google/uuid"
)

const (
	KeyUsers      = "cebip_users"
	KeyBenefits   = "cebip_benefits"
	KeyPromotions = "cebip_promotions"
)

// SessionSlot is the part of the session manager UpdateUser needs to keep
// the signed-in snapshot in step with the Users collection.
type SessionSlot interface {
	Current(ctx context.Context) *models.Session
	Save(ctx context.Context, s models.Session) error
}

type Repository struct {
	store   kv.Store
	log     logging.Logger
	now     func() time.Time
	newID   func() string
	session SessionSlot
}

type Option func(*Repository)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l logging.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator replaces uuid.NewString for new user ids.
func WithIDGenerator(f func() string) Option {
	return func(r *Repository) { r.newID = f }
}

func New(store kv.Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		log:   logging.Nop(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// BindSession attaches the session slot refreshed by UpdateUser. The
// session manager itself reads users through the repository, so the two
// are wired after construction.
func (r *Repository) BindSession(s SessionSlot) {
	r.session = s
}

func readAll[T any](ctx context.Context, r *Repository, key string) []T {
	v, ok := kv.Read[[]T](ctx, r.store, r.log, key)
	if !ok || v == nil {
		return []T{}
	}
	return v
}

func (r *Repository) GetUsers(ctx context.Context) []models.User {
	return readAll[models.User](ctx, r, KeyUsers)
}

func (r *Repository) SaveUsers(ctx context.Context, users []models.User) error {
	return kv.Write(ctx, r.store, r.log, KeyUsers, users)
}

func (r *Repository) GetBenefits(ctx context.Context) []models.Benefit {
	return readAll[models.Benefit](ctx, r, KeyBenefits)
}

func (r *Repository) SaveBenefits(ctx context.Context, benefits []models.Benefit) error {
	return kv.Write(ctx, r.store, r.log, KeyBenefits, benefits)
}

func (r *Repository) GetPromotions(ctx context.Context) []models.Promotion {
	return readAll[models.Promotion](ctx, r, KeyPromotions)
}

func (r *Repository) SavePromotions(ctx context.Context, promotions []models.Promotion) error {
	return kv.Write(ctx, r.store, r.log, KeyPromotions, promotions)
}

// InitializeDefaultData seeds the default benefits and promotions. Each
// collection is seeded only while it is empty, independently of the other.
func (r *Repository) InitializeDefaultData(ctx context.Context) error {
	if len(r.GetBenefits(ctx)) == 0 {
		if err := r.SaveBenefits(ctx, defaultBenefits()); err != nil {
			return fmt.Errorf("seed benefits: %w", err)
		}
		r.log.Info(ctx, "default benefits seeded")
	}
	if len(r.GetPromotions(ctx)) == 0 {
		if err := r.SavePromotions(ctx, defaultPromotions()); err != nil {
			return fmt.Errorf("seed promotions: %w", err)
		}
		r.log.Info(ctx, "default promotions seeded")
	}
	return nil
}

// InitializeUsers seeds the administrator and the demo members when the
// Users collection is empty or absent.
func (r *Repository) InitializeUsers(ctx context.Context) error {
	if len(r.GetUsers(ctx)) > 0 {
		return nil
	}

	seed := defaultUsers(r.now())
	users := make([]models.User, 0, len(seed))
	for _, s := range seed {
		u := s.user
		u.Password = cryptox.HashPassword([]byte(s.password))
		users = append(users, u)
	}

	if err := r.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	r.log.Info(ctx, "default users seeded", "count", len(users))
	return nil
}

// CreateUser appends a new user with a fresh id and createdAt.
func (r *Repository) CreateUser(ctx context.Context, nu models.NewUser) (models.User, error) {
	u := models.User{
		ID:             r.newID(),
		Email:          nu.Email,
		Password:       cryptox.HashPassword([]byte(nu.Password)),
		Name:           nu.Name,
		Role:           nu.Role,
		Status:         nu.Status,
		CreatedAt:      r.now(),
		MembershipType: nu.MembershipType,
		Avatar:         nu.Avatar,
	}

	users := append(r.GetUsers(ctx), u)
	if err := r.SaveUsers(ctx, users); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UpdateUser merges patch into the user with the given id and returns the
// merged record, or nil if no such user exists. If that user is the one
// signed in, the session slot is rewritten with the merged record and the
// same token.
func (r *Repository) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	users := r.GetUsers(ctx)

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	if patch.Password != nil {
		hashed := cryptox.HashPassword([]byte(*patch.Password))
		patch.Password = &hashed
	}
	updated := patch.Apply(users[idx])
	users[idx] = updated

	if err := r.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	if r.session != nil {
		if cur := r.session.Current(ctx); cur != nil && cur.User.ID == id {
			if err := r.session.Save(ctx, models.Session{User: updated, Token: cur.Token}); err != nil {
				return nil, fmt.Errorf("refresh session: %w", err)
			}
		}
	}

	return &updated, nil
}

// DeleteUser removes the user with the given id and reports whether one
// was found.
func (r *Repository) DeleteUser(ctx context.Context, id string) (bool, error) {
	kept, removed := removeByID(r.GetUsers(ctx), id, func(u models.User) string { return u.ID })
	if !removed {
		return false, nil
	}

	if err := r.SaveUsers(ctx, kept); err != nil {
		return false, fmt.Errorf("delete user %s: %w", id, err)
	}
	return true, nil
}
