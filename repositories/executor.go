package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildwise/buildwise-backend/models"
)

// Executor is the slice of pgx that repositories are allowed to use. Both the
// connection pool and an open transaction satisfy it.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Transactor is the slice of the pool handed to usecases: plain executor
// access plus transactional execution.
type Transactor interface {
	GetExecutor() Executor
	Transaction(ctx context.Context, fn func(tx Executor) error) error
}

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{connectionPool: pool}
}

func (g ExecutorGetter) GetExecutor() Executor {
	return g.connectionPool
}

// Transaction runs fn in one database transaction. The callback can return
// models.ErrIgnoreRollBackError to roll back without surfacing an error.
func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(tx)
	})
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "error executing transaction")
}

// TransactionReturnValue is Transaction for callbacks that compute a result.
func TransactionReturnValue[T any](
	ctx context.Context,
	transactor Transactor,
	fn func(tx Executor) (T, error),
) (T, error) {
	var value T
	transactionErr := transactor.Transaction(ctx, func(tx Executor) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
