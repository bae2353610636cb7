// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vendorhub/config"
	"vendorhub/internal/domain/lifecycle"
)

const dir = "sql"

//go:embed sql/*.sql
var FS embed.FS

// goose keeps its FS, dialect and logger in package state.
var gooseMu sync.Mutex

// Migrator applies the embedded migrations to a database.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator builds a Migrator over the connection pool behind db.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	return &Migrator{db: sqlDB, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(func() error { return goose.UpContext(ctx, m.db, dir) })
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(func() error { return goose.DownContext(ctx, m.db, dir) })
}

// Status logs the applied state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	return m.run(func() error { return goose.StatusContext(ctx, m.db, dir) })
}

func (m *Migrator) run(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(FS)
	goose.SetLogger(&gooseLogger{logger: m.logger})
	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return errors.Wrap(fn(), "run migrations")
}

// AutoMigrateParams defines the dependencies of RegisterAutoMigrate.
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Migrator *Migrator
	Logger   *slog.Logger
}

// RegisterAutoMigrate applies pending migrations at startup when enabled.
func RegisterAutoMigrate(params AutoMigrateParams) {
	if !params.Config.Migrations.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Applying database migrations")

			return params.Migrator.Up(ctx)
		},
	})
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	if l.logger != nil {
		l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	}
}

func (l *gooseLogger) Printf(format string, v ...any) {
	if l.logger != nil {
		l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
	}
}
