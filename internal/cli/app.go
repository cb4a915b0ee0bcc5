package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/cebip/internal/backup"
	"github.com/dmitrijs2005/cebip/internal/config"
	"github.com/dmitrijs2005/cebip/internal/logging"
	"github.com/dmitrijs2005/cebip/internal/models"
)

// Repository is the data surface the CLI drives.
type Repository interface {
	GetUsers(ctx context.Context) []models.User
	GetBenefits(ctx context.Context) []models.Benefit
	GetPromotions(ctx context.Context) []models.Promotion
	CreateUser(ctx context.Context, nu models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	CreateBenefit(ctx context.Context, nb models.NewBenefit) (models.Benefit, error)
	UpdateBenefit(ctx context.Context, id string, patch models.BenefitPatch) (*models.Benefit, error)
	DeleteBenefit(ctx context.Context, id string) (bool, error)
	CreatePromotion(ctx context.Context, np models.NewPromotion) (models.Promotion, error)
	UpdatePromotion(ctx context.Context, id string, patch models.PromotionPatch) (*models.Promotion, error)
	DeletePromotion(ctx context.Context, id string) (bool, error)
	ExportData(ctx context.Context) models.Snapshot
	ImportData(ctx context.Context, data models.ImportData) error
	ResetAllData(ctx context.Context) error
}

// Sessions authenticates users and answers role questions.
type Sessions interface {
	Authenticate(ctx context.Context, email string, password []byte) (*models.Session, error)
	Current(ctx context.Context) *models.Session
	Logout(ctx context.Context) error
	IssuedAt(ctx context.Context) (time.Time, error)
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	IsMember(ctx context.Context) bool
}

type App struct {
	config   *config.Config
	repo     Repository
	sessions Sessions
	log      logging.Logger
	files    backup.Sink
	remote   backup.Sink
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

type Option func(*App)

// WithRemoteSink makes every export also go to s (for example S3).
func WithRemoteSink(s backup.Sink) Option {
	return func(a *App) { a.remote = s }
}

// WithIO replaces stdin/stdout, mainly for tests.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithFileSink replaces the local backup directory sink.
func WithFileSink(s backup.Sink) Option {
	return func(a *App) { a.files = s }
}

func NewApp(c *config.Config, repo Repository, sessions Sessions, log logging.Logger, opts ...Option) *App {
	a := &App{
		config:   c,
		repo:     repo,
		sessions: sessions,
		log:      log,
		files:    backup.FileSink{Dir: "backups"},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// opCtx bounds a single command's storage work by the configured timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.IsAuthenticated(ctx)
}

func (a *App) isAdmin(ctx context.Context) bool {
	return a.sessions.IsAdmin(ctx)
}

func (a *App) isMember(ctx context.Context) bool {
	return a.sessions.IsMember(ctx)
}

// Run prints the banner and blocks in the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to CEBIP (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) getStatus(ctx context.Context) string {
	s := a.sessions.Current(ctx)
	if s == nil {
		return ""
	}
	return "(" + s.User.Email + " " + string(s.User.Role) + ")"
}
