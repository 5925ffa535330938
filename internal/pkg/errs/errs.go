// Package errs wraps cockroachdb/errors behind the three operations the
// codebase needs: sentinel creation, context wrapping, and marking an
// infrastructure error with a usecase sentinel for errors.Is dispatch.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
