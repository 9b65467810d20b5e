package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

// Executor stands in for a pg executor in usecase tests where the repository
// itself is mocked and no sql is ever executed.
type Executor struct {
	mock.Mock
}

func (m *Executor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *Executor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type ExecutorFactory struct {
	mock.Mock
}

func (m *ExecutorFactory) NewExecutor() repositories.Executor {
	args := m.Called()
	return args.Get(0).(repositories.Executor)
}

// Transaction wraps an Executor so transaction callbacks can run against the
// same mocked repository expectations.
type Transaction struct {
	Executor
}

func (m *Transaction) RawTx() pgx.Tx {
	return nil
}

// TransactionFactory runs the callback synchronously on the given transaction.
type TransactionFactory struct {
	Tx repositories.Transaction
}

func (f TransactionFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(f.Tx)
}
