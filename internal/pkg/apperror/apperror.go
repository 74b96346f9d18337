// Package apperror defines the error kinds the ledger surfaces to callers.
//
// Validation and conflict errors are rejected before any write. Storage errors
// wrap whatever the repository layer returned and are always propagated.
package apperror

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")

	statusCodeMap = map[error]int{
		ErrValidation: http.StatusBadRequest,
		ErrNotFound:   http.StatusNotFound,
		ErrConflict:   http.StatusConflict,
		ErrStorage:    http.StatusInternalServerError,
	}
)

func Validation(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func NotFound(resource string, id any) error {
	return errors.Mark(errors.Newf("%s %v not found", resource, id), ErrNotFound)
}

func Conflict(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConflict)
}

// Storage marks err as a storage failure of op. Errors that already carry a
// kind are returned unchanged.
func Storage(err error, op string) error {
	if err == nil {
		return nil
	}
	if Kind(err) != nil {
		return err
	}
	return errors.Mark(errors.Wrap(err, op), ErrStorage)
}

// Kind returns the sentinel err is marked with, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrStorage} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsStorage(err error) bool    { return errors.Is(err, ErrStorage) }

func HTTPStatus(err error) int {
	if k := Kind(err); k != nil {
		return statusCodeMap[k]
	}
	return http.StatusInternalServerError
}

// Message is what a caller may show to a user. Storage and unknown errors are
// not echoed back.
func Message(err error) string {
	switch Kind(err) {
	case ErrValidation, ErrNotFound, ErrConflict:
		return err.Error()
	default:
		return "internal error"
	}
}
