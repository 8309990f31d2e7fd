// Package faults defines the typed error variants domain operations return.
//
// The stores and services return these instead of logging and swallowing
// failures, so callers (and tests) can tell "the document does not exist"
// apart from "the database was unreachable". HTTP handlers translate them
// to status codes in one place.
package faults

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Kind classifies a fault.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPermissionDenied
	KindConflict
	KindInvalidArgument
	KindUnavailable
)

// Fault is an error with a Kind and an operation label.
type Fault struct {
	Kind Kind
	Op   string // short operation label, e.g. "membershipstore.Join"
	Err  error  // underlying cause, may be nil
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Op, f.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// NotFound returns a KindNotFound fault for the given operation.
func NotFound(op string, err error) error {
	return &Fault{Kind: KindNotFound, Op: op, Err: err}
}

// PermissionDenied returns a KindPermissionDenied fault.
func PermissionDenied(op string, err error) error {
	return &Fault{Kind: KindPermissionDenied, Op: op, Err: err}
}

// Conflict returns a KindConflict fault.
func Conflict(op string, err error) error {
	return &Fault{Kind: KindConflict, Op: op, Err: err}
}

// InvalidArgument returns a KindInvalidArgument fault.
func InvalidArgument(op string, err error) error {
	return &Fault{Kind: KindInvalidArgument, Op: op, Err: err}
}

// Unavailable returns a KindUnavailable fault.
func Unavailable(op string, err error) error {
	return &Fault{Kind: KindUnavailable, Op: op, Err: err}
}

// KindOf reports the Kind of err, or KindUnknown for non-fault errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a KindNotFound fault.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// FromMongo maps a mongo-driver error to a fault for the given operation.
// ErrNoDocuments becomes NotFound; context and server-selection failures
// become Unavailable; anything else is passed through wrapped.
func FromMongo(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound(op, err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return Unavailable(op, err)
	default:
		return &Fault{Kind: KindUnknown, Op: op, Err: err}
	}
}
