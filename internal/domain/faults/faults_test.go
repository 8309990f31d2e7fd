package faults

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("op", cause), KindNotFound},
		{"permission denied", PermissionDenied("op", cause), KindPermissionDenied},
		{"conflict", Conflict("op", cause), KindConflict},
		{"invalid argument", InvalidArgument("op", cause), KindInvalidArgument},
		{"unavailable", Unavailable("op", cause), KindUnavailable},
		{"plain error", cause, KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("op", errors.New("gone")))
	if !IsNotFound(err) {
		t.Errorf("IsNotFound must see through fmt.Errorf wrapping")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Conflict("op", cause)
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is must reach the underlying cause")
	}
}

func TestFromMongo(t *testing.T) {
	if FromMongo("op", nil) != nil {
		t.Errorf("nil error must map to nil")
	}
	if got := KindOf(FromMongo("op", mongo.ErrNoDocuments)); got != KindNotFound {
		t.Errorf("ErrNoDocuments: got %v, want %v", got, KindNotFound)
	}
	if got := KindOf(FromMongo("op", errors.New("write failure"))); got != KindUnknown {
		t.Errorf("unrecognized error: got %v, want %v", got, KindUnknown)
	}
}

func TestErrorString(t *testing.T) {
	err := NotFound("store.Get", errors.New("no row"))
	want := "store.Get: not found: no row"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
