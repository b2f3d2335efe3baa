package booking

import (
	"context"
	"database/sql"

	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so repositories accept both raw and
// metric-wrapped connections.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
