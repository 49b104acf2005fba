package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"SKU_EXISTS", http.StatusConflict},
		{"EMAIL_EXISTS", http.StatusConflict},
		{"OPTIMISTIC_LOCK_FAILED", http.StatusConflict},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"TOKEN_REVOKED", http.StatusUnauthorized},
		{"FORBIDDEN", http.StatusForbidden},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"CAPACITY_EXCEEDED", http.StatusUnprocessableEntity},
		{"SAME_WAREHOUSE", http.StatusUnprocessableEntity},
		{"BAD_REQUEST", http.StatusBadRequest},
		// INVALID_* codes without an explicit mapping are validation failures
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_BOX_SIZE", http.StatusBadRequest},
		// Anything else is a server fault
		{"UNKNOWN_CODE", http.StatusInternalServerError},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}
