package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/repositories"
)

// Executor is a no-op repositories.Executor for tests where the repository
// layer is itself mocked and the executor is only passed around.
type Executor struct {
	mock.Mock
}

func (e *Executor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgconn.CommandTag), arguments.Error(1)
}

func (e *Executor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Rows), arguments.Error(1)
}

func (e *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Row)
}

type Transactor struct {
	mock.Mock
	ExecMock *Executor
}

func NewTransactor() *Transactor {
	return &Transactor{ExecMock: &Executor{}}
}

func (t *Transactor) GetExecutor() repositories.Executor {
	return t.ExecMock
}

func (t *Transactor) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(t.ExecMock)
}
