// Package api — HTTP gateway for the receipt scoring service.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorResponse is the wire envelope for every error the API returns.
type ErrorResponse struct {
	// Description is a short, human-readable explanation.
	Description string `json:"description"`
}

// Fixed descriptions of the wire contract. Clients match on these
// strings, so they never vary per occurrence.
const (
	descInvalidReceipt   = "The receipt is invalid."
	descReceiptNotFound  = "No receipt found for that ID."
	descMethodNotAllowed = "The HTTP method is not supported for this endpoint."
	descTooManyRequests  = "Rate limit exceeded. Retry after the specified interval."
	descInternal         = "An unexpected error occurred. Please try again later."
)

// WriteError writes an error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Description: description})
}

// WriteInvalidReceipt writes the uniform 400 validation rejection.
func WriteInvalidReceipt(w http.ResponseWriter) {
	WriteError(w, http.StatusBadRequest, descInvalidReceipt)
}

// WriteReceiptNotFound writes the uniform 404 unknown-identifier response.
func WriteReceiptNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, descReceiptNotFound)
}

// WriteMethodNotAllowed writes a 405 error response.
func WriteMethodNotAllowed(w http.ResponseWriter) {
	WriteError(w, http.StatusMethodNotAllowed, descMethodNotAllowed)
}

// WriteTooManyRequests writes a 429 error response with a Retry-After header.
func WriteTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSecs))
	WriteError(w, http.StatusTooManyRequests, descTooManyRequests)
}

// WriteInternal writes a 500 error response.
// The err parameter is logged but NEVER exposed to the client.
func WriteInternal(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	WriteError(w, http.StatusInternalServerError, descInternal)
}
