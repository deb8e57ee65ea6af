// Package billing implements the invoice computation core: monetary totals
// with tiered loyalty discounts, gap-filling sequential identifiers, loyalty
// card issuance and the French amount-in-words conversion used on the legal
// line of an invoice. Everything here is a pure function of its inputs; the
// service layer owns storage and transactions.
package billing

import (
	"errors"
	"fmt"
)

// ValidationError reports rejected caller input (empty line items,
// non-positive quantity or price, malformed identifiers). It is never
// retried and never fatal.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports a reference to an unknown entity code.
type NotFoundError struct {
	Entity string
	Code   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Code)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
