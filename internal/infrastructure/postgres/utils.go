package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Stock-api/internal/domain"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repositorios funcionan con cualquiera.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE usados por los adaptadores.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// identifierIndexes nombre legible de cada índice único de identificadores de stock_units.
var identifierIndexes = map[string]string{
	"ux_stock_units_primary_imei":   "IMEI principal",
	"ux_stock_units_secondary_imei": "IMEI secundario",
	"ux_stock_units_shop_barcode":   "código de barras",
}

// identifierConflict ErrConflict para una violación de unicidad. El mensaje llega al cliente:
// solo nombra el identificador, nunca el texto de PostgreSQL.
func identifierConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if name, ok := identifierIndexes[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s duplicado", domain.ErrConflict, name)
		}
	}
	return fmt.Errorf("%w: identificador duplicado", domain.ErrConflict)
}

// isRetryable indica si la transacción falló por serialización o deadlock y puede repetirse completa.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
	}
	return false
}

// nullIfEmpty convierte "" en NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
