package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool        *pgxpool.Pool
	isolation   pgx.TxIsoLevel
	maxAttempts int
	log         *logger.Logger
}

// NewTxRunner construye el runner. isolation: read_committed | serializable.
// maxAttempts acota los reintentos ante fallos de serialización (1 = sin reintento).
func NewTxRunner(pool *pgxpool.Pool, isolation string, maxAttempts int, log *logger.Logger) *TxRunner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TxRunner{pool: pool, isolation: parseIsolation(isolation), maxAttempts: maxAttempts, log: log.Component("tx")}
}

func parseIsolation(s string) pgx.TxIsoLevel {
	switch s {
	case "serializable":
		return pgx.Serializable
	default:
		return pgx.ReadCommitted
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Si la transacción falla por serialización o deadlock se repite completa hasta maxAttempts veces.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			return err
		}
		r.log.Warn().Err(err).Int("attempt", attempt).Msg("transacción abortada por concurrencia, reintentando")
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: r.isolation})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos repositorios atados a q (pool para lecturas sueltas o tx).
func NewRepos(q Querier) ports.TxRepos {
	return ports.TxRepos{
		Units:     NewStockUnitRepository(q),
		Sales:     NewSaleRepository(q),
		Customers: NewCustomerRepository(q),
		Transfers: NewTransferRepository(q),
		Garbage:   NewGarbageRepository(q),
		Catalog:   NewCatalogRepository(q),
	}
}
