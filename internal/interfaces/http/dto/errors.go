package dto

import (
	"net/http"
	"strings"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the prefix rules in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"SKU_EXISTS":     http.StatusConflict,
	"BARCODE_EXISTS": http.StatusConflict,
	"EMAIL_EXISTS":   http.StatusConflict,

	// Concurrency
	"CONCURRENCY_CONFLICT":   http.StatusConflict,
	"OPTIMISTIC_LOCK_FAILED": http.StatusConflict,

	// Auth
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	// Business rules -> 422 Unprocessable Entity
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":   http.StatusUnprocessableEntity,
	"CAPACITY_EXCEEDED":    http.StatusUnprocessableEntity,
	"CAPACITY_BELOW_USAGE": http.StatusUnprocessableEntity,
	"WAREHOUSE_NOT_EMPTY":  http.StatusUnprocessableEntity,
	"SAME_WAREHOUSE":       http.StatusUnprocessableEntity,

	// Input
	"BAD_REQUEST": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// INVALID_* codes not mapped above are treated as validation failures.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Commonly used codes for errors raised at the HTTP layer itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)
