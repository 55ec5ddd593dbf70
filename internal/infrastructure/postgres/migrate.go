package postgres

import (
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Stock-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones embebidas con goose sobre una conexión database/sql (driver lib/pq).
func Migrate(dsn string, log *logger.Logger) error {
	db, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	version, err := goose.GetDBVersion(db)
	if err == nil && log != nil {
		log.Info().Int64("version", version).Msg("migraciones aplicadas")
	}
	return nil
}
