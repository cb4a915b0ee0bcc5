// Package session manages the single signed-in session slot and the role
// predicates derived from it.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/cryptox"
	"github.com/dmitrijs2005/cebip/internal/logging"
	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/dmitrijs2005/cebip/internal/storage/kv"
)

const Key = "cebip_session"

// UserStore is the Users collection as seen by authentication.
type UserStore interface {
	GetUsers(ctx context.Context) []models.User
	SaveUsers(ctx context.Context, users []models.User) error
}

// Manager reads and writes the session slot in a kv.Store. It holds no
// session state of its own; every call goes to the store.
type Manager struct {
	store  kv.Store
	users  UserStore
	secret []byte
	log    logging.Logger
	now    func() time.Time
}

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store kv.Store, users UserStore, secret []byte, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		users:  users,
		secret: secret,
		log:    logging.Nop(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Authenticate signs in the first user whose email matches exactly and
// whose credential verifies against password. Only active users may sign
// in. A rejected attempt returns (nil, nil); an error means the lastLogin
// update or the session write failed.
func (m *Manager) Authenticate(ctx context.Context, email string, password []byte) (*models.Session, error) {
	users := m.users.GetUsers(ctx)

	idx := -1
	for i := range users {
		if users[i].Email == email && cryptox.VerifyPassword(users[i].Password, password) {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.log.Info(ctx, "login rejected: bad credentials", "email", email)
		return nil, nil
	}
	if !users[idx].IsActive() {
		m.log.Info(ctx, "login rejected: user not active", "email", email, "status", users[idx].Status)
		return nil, nil
	}

	now := m.now()
	users[idx].LastLogin = &now
	if err := m.users.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("record last login: %w", err)
	}

	token, err := cryptox.MintToken(users[idx].ID, now, m.secret)
	if err != nil {
		return nil, err
	}

	s := models.Session{User: users[idx], Token: token}
	if err := m.Save(ctx, s); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "user signed in", "user_id", s.User.ID, "role", s.User.Role)
	return &s, nil
}

// Current returns the stored session, or nil when the slot is empty or
// holds something that does not decode.
func (m *Manager) Current(ctx context.Context) *models.Session {
	s, ok := kv.Read[models.Session](ctx, m.store, m.log, Key)
	if !ok || s.User.ID == "" {
		return nil
	}
	return &s
}

// Save overwrites the session slot.
func (m *Manager) Save(ctx context.Context, s models.Session) error {
	if err := kv.Write(ctx, m.store, m.log, Key, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout clears the slot whether or not a session exists.
func (m *Manager) Logout(ctx context.Context) error {
	if err := kv.Clear(ctx, m.store, m.log, Key); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// IssuedAt verifies the current session's token against the configured
// secret and the stored user, and returns when it was issued. It fails with
// common.ErrorUnauthorized when nobody is signed in, and with
// common.ErrInvalidToken when the token does not belong to the session user.
func (m *Manager) IssuedAt(ctx context.Context) (time.Time, error) {
	s := m.Current(ctx)
	if s == nil {
		return time.Time{}, common.ErrorUnauthorized
	}

	sub, iat, err := cryptox.ParseToken(s.Token, m.secret)
	if err != nil {
		return time.Time{}, err
	}
	if sub != s.User.ID {
		return time.Time{}, fmt.Errorf("%w: subject %q does not match user %q", common.ErrInvalidToken, sub, s.User.ID)
	}
	return iat, nil
}

func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Current(ctx) != nil
}

func (m *Manager) IsAdmin(ctx context.Context) bool {
	s := m.Current(ctx)
	return s != nil && s.User.IsAdmin()
}

func (m *Manager) IsMember(ctx context.Context) bool {
	s := m.Current(ctx)
	return s != nil && s.User.IsMember()
}
