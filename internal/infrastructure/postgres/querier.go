package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier es el subconjunto común de *pgxpool.Pool y pgx.Tx que usan los repositorios
// (solo lectura). Permite construir los adaptadores sobre el pool, una transacción o un mock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
