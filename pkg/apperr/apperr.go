// Package apperr classifies errors by HTTP status. Handlers render any error
// as {"error": message} with the status returned by Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/ansel1/merry"
	"gorm.io/gorm"
)

var (
	ErrNotFound = merry.New("not found").WithHTTPCode(http.StatusNotFound)
	ErrInvalid  = merry.New("invalid request").WithHTTPCode(http.StatusBadRequest)
	ErrConflict = merry.New("conflict").WithHTTPCode(http.StatusConflict)
)

func NotFound(format string, args ...any) error {
	return merry.WithMessagef(ErrNotFound, format, args...)
}

func Invalid(format string, args ...any) error {
	return merry.WithMessagef(ErrInvalid, format, args...)
}

func Conflict(format string, args ...any) error {
	return merry.WithMessagef(ErrConflict, format, args...)
}

func IsNotFound(err error) bool { return merry.Is(err, ErrNotFound) }
func IsInvalid(err error) bool  { return merry.Is(err, ErrInvalid) }
func IsConflict(err error) bool { return merry.Is(err, ErrConflict) }

// Status is the HTTP status for err; unclassified errors are 500.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsInvalid(err):
		return http.StatusBadRequest
	case IsConflict(err):
		return http.StatusConflict
	}
	return merry.HTTPCode(err)
}

// FromDB classifies a gorm error. Unique violations become Conflict errors
// whose message names constraint in the PostgreSQL wording, so clients can
// match on the constraint name whatever driver is behind the store.
func FromDB(err error, constraint string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record not found")
	}
	if !IsUniqueViolation(err) {
		return merry.Wrap(err)
	}
	msg := err.Error()
	if primaryKeyClash.MatchString(msg) {
		return Conflict("duplicate id: %s", msg)
	}
	if constraint != "" && !strings.Contains(msg, constraint) {
		msg = fmt.Sprintf("duplicate key value violates unique constraint %q (%s)", constraint, msg)
	}
	return Conflict("%s", msg)
}

// primaryKeyClash matches the SQLite ("farms.id") and PostgreSQL
// ("farms_pkey") wording of a primary key violation.
var primaryKeyClash = regexp.MustCompile(`\w\.id\b|_pkey\b`)

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
