package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool — тонкая обёртка над pgxpool: squirrel-запрос на входе,
// структуры с db-тегами на выходе.
type Pool interface {
	// Getx сканирует ровно одну строку; pgx.ErrNoRows пробрасывается.
	Getx(ctx context.Context, dest interface{}, query sq.Sqlizer) error
	// Selectx сканирует все строки; пустой результат — не ошибка.
	Selectx(ctx context.Context, dest interface{}, query sq.Sqlizer) error
	Close()
}

type pool struct {
	p *pgxpool.Pool
}

// NewPool создаёт пул и пингует базу с ретраями, чтобы пережить
// старт раньше базы.
func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	err = backoff.Retry(
		func() error { return p.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &pool{p: p}, nil
}

func (p *pool) Getx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}
	return pgxscan.Get(ctx, p.p, dest, stmt, args...)
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	stmt, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}
	return pgxscan.Select(ctx, p.p, dest, stmt, args...)
}

func (p *pool) Close() {
	p.p.Close()
}
