// Package httpjson provides the JSON request/response helpers shared by the
// feature handlers, including translation of domain faults to HTTP status
// codes.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"go.uber.org/zap"
)

// errorBody is the JSON envelope for error responses.
type errorBody struct {
	Error string `json:"error"`
}

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, errorBody{Error: msg})
}

// Decode reads the request body into dst. Returns false (after writing a
// 400 response) if the body is not valid JSON.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

// StatusOf maps a domain fault to an HTTP status code.
func StatusOf(err error) int {
	switch faults.KindOf(err) {
	case faults.KindNotFound:
		return http.StatusNotFound
	case faults.KindPermissionDenied:
		return http.StatusForbidden
	case faults.KindConflict:
		return http.StatusConflict
	case faults.KindInvalidArgument:
		return http.StatusBadRequest
	case faults.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fault logs err and writes the matching error response. User-facing
// messages stay generic; detail goes to the log.
func Fault(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error(op, zap.Error(err))
	} else {
		log.Warn(op, zap.Error(err))
	}

	msg := "internal error"
	switch status {
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusForbidden:
		msg = "forbidden"
	case http.StatusConflict:
		msg = "conflict"
	case http.StatusBadRequest:
		msg = "invalid request"
	case http.StatusServiceUnavailable:
		msg = "service unavailable"
	}
	Error(w, status, msg)
}
