package store

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// retryablePgCodes are the SQLSTATEs after which a transaction may succeed
// when run again: lost connections (class 08), rollbacks such as
// serialization failures and deadlocks (class 40) and a server that is
// still starting (57P03).
var retryablePgCodes = mapset.NewSet(
	pgerrcode.ConnectionException,
	pgerrcode.ConnectionDoesNotExist,
	pgerrcode.ConnectionFailure,
	pgerrcode.TransactionRollback,
	pgerrcode.SerializationFailure,
	pgerrcode.DeadlockDetected,
	pgerrcode.CannotConnectNow,
)

// PostgresErrorClassifier implements [ErrorClassificator] for the server
// database using the SQLSTATE of pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from
// PostgreSQL are never retried.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if retryablePgCodes.Contains(postgresError(err)) {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation
}

// postgresError returns the SQLSTATE of err, or "" when err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
