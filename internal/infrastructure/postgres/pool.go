package postgres

import (
	"context"
	"fmt"
	"net"
	"strconv"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Stock-api/pkg/config"
)

// NewPool crea el pool que usan el TxRunner y los repos de lectura.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// newPoolConfig traduce DBConfig a pgxpool.Config sin abrir conexiones.
func newPoolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	p := cfg.Pool
	if p.MaxConns > 0 {
		poolConfig.MaxConns = int32(p.MaxConns)
	}
	if p.MinConns > 0 {
		poolConfig.MinConns = int32(p.MinConns)
	}
	if p.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = p.MaxConnLifetime
	}
	if p.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = p.MaxConnIdleTime
	}
	if p.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = p.ConnectTimeout
	}
	if p.StatementTimeout > 0 {
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(p.StatementTimeout.Milliseconds(), 10)
	}
	if p.PreferIPv4 {
		// Solo cambia la familia del socket: el host de la URL se conserva para TLS.
		dialer := &net.Dialer{Timeout: poolConfig.ConnConfig.ConnectTimeout}
		poolConfig.ConnConfig.DialFunc = func(ctx context.Context, _, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp4", addr)
		}
	}

	// NUMERIC -> decimal.Decimal: precios, totales y total_purchases nunca pasan por float.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}
