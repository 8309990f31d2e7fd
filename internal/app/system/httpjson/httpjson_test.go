package httpjson

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"go.uber.org/zap"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", faults.NotFound("op", nil), http.StatusNotFound},
		{"permission denied", faults.PermissionDenied("op", nil), http.StatusForbidden},
		{"conflict", faults.Conflict("op", nil), http.StatusConflict},
		{"invalid argument", faults.InvalidArgument("op", nil), http.StatusBadRequest},
		{"unavailable", faults.Unavailable("op", nil), http.StatusServiceUnavailable},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFault(t *testing.T) {
	rec := httptest.NewRecorder()
	Fault(rec, zap.NewNop(), "test op", faults.NotFound("op", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), "not found") {
		t.Errorf("body = %q, want it to mention not found", rec.Body.String())
	}
}

func TestDecode_BadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))

	var dst struct{}
	if Decode(rec, req, &dst) {
		t.Fatal("Decode accepted invalid JSON")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
