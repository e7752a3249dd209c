// Package errors provides the sentinel errors of the product catalog.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")

// ErrValidation classifies business-rule violations. Match it with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError names the violated rule. It matches ErrValidation.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string {
	return e.Rule
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrExpiryBeforeEntry is returned when a product's expiry date is earlier than its entry date.
var ErrExpiryBeforeEntry error = &ValidationError{Rule: "expiry date cannot precede entry date"}
