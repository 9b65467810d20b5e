package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
)

// ExecutorFactoryStub backs repository calls with a pgxmock pool, for tests
// that assert on the sql actually produced.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(transactionStub{stub.NewExecutor()})
}

type transactionStub struct {
	repositories.Executor
}

func (transactionStub) RawTx() pgx.Tx {
	return nil
}
