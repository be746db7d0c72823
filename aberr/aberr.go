// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aberr defines the errors returned by the abstat packages.
//
// There are two kinds of failure. An InvalidInputError means the
// caller passed arguments the operation cannot accept, such as an
// empty sample or an alpha outside (0,1). A
// ComputationError means the arguments were well formed but the
// underlying formula has no answer for them, such as a t-test on two
// zero-variance samples.
//
// Both are returned wrapped with a stack trace; use errors.As or the
// IsInvalidInput and IsComputation helpers to test for them.
package aberr

import (
	"fmt"

	"github.com/pkg/errors"
)

// An InvalidInputError reports arguments an operation cannot accept.
type InvalidInputError struct {
	// Op is the operation that rejected its input, such as
	// "abboot.Bootstrap".
	Op string

	// Reason describes what is wrong with the input.
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
}

// A ComputationError reports a numerical failure of a well-formed
// computation.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// Invalid returns an InvalidInputError for op with a formatted reason.
func Invalid(op, format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// Computation wraps err as a ComputationError for op. It returns nil
// if err is nil.
func Computation(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&ComputationError{Op: op, Err: err})
}

// IsInvalidInput reports whether err is or wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

// IsComputation reports whether err is or wraps a ComputationError.
func IsComputation(err error) bool {
	var e *ComputationError
	return errors.As(err, &e)
}
