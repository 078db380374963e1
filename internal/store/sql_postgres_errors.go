package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the constraint a failed statement
// ran into, if any.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and anything not listed below.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a duplicate key.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing row.
	ForeignKeyViolation

	// NotNullViolation indicates a required column was left empty.
	NotNullViolation
)

// errUniqueViolation is wrapped by [DB.classify]; repositories translate it
// into their own sentinel (for example, [ErrEmailAlreadyExists]).
var errUniqueViolation = errors.New("unique violation")

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	default:
		return Unclassified
	}
}
