package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the standard error envelope for all API errors. Code is a
// stable machine-readable identifier clients can branch on.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[httputil] JSON encode error: %v", err)
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// ErrorCode writes a JSON error response carrying a stable error code.
func ErrorCode(w http.ResponseWriter, status int, code string) {
	JSON(w, status, ErrorResponse{Error: code, Code: code})
}

// BadRequest writes a 400 error with the given code.
func BadRequest(w http.ResponseWriter, code string) {
	ErrorCode(w, http.StatusBadRequest, code)
}

// NotFound writes a 404 error with the given code.
func NotFound(w http.ResponseWriter, code string) {
	ErrorCode(w, http.StatusNotFound, code)
}

// InternalError writes a 500 error. Logs the real error but returns a
// generic code to the client (never leak internals).
func InternalError(w http.ResponseWriter, code string, err error) {
	log.Printf("[httputil] internal error: %v", err)
	ErrorCode(w, http.StatusInternalServerError, code)
}

// Decode reads JSON from the request body into dst.
// Returns false and writes a 400 response if parsing fails.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "invalid_json")
		return false
	}
	return true
}
