package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Tx is an opaque transaction handle passed through repository calls.
// Repositories accept nil (non-transactional path); the concrete type is
// infra-defined (pgx.Tx for Postgres).
type Tx interface{}

// NoTX is passed where no transaction is in flight.
var NoTX Tx

// TransactionManager executes fn inside a database transaction, handing the
// tx handle to the callback. Keeps use-case signatures free of driver types.
type TransactionManager interface {
	WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx Tx) error) error
}
