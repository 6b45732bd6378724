// Package errors re-exports the stdlib error helpers next to the pkg/errors
// annotations so callers only import one errors package.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

var (
	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
	Errorf      = pkgerrors.Errorf
	Cause       = pkgerrors.Cause
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack returns the deepest stack trace recorded in err's chain, or an empty
// string when nothing in the chain was annotated by pkg/errors.
func Stack(err error) string {
	var deepest stackTracer
	for current := err; current != nil; current = stderrors.Unwrap(current) {
		if st, ok := current.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
