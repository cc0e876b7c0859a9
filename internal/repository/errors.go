package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports that a point lookup matched no rows.
var ErrNotFound = errors.New("record not found")

// ErrHasInvoices is returned when deleting a customer under the
// restrict policy while invoices still reference it.
var ErrHasInvoices = errors.New("customer has invoices")

// DataAccessError wraps any underlying store failure (connectivity,
// constraint violation, timeout) with the operation that hit it.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func dataErr(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// notFoundOr maps an empty result to ErrNotFound and anything else to
// a DataAccessError.
func notFoundOr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return dataErr(op, err)
}
