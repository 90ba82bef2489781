package api

// ErrorResponse is the HTTP response for errors. Validation, not-found and
// boundary failures are distinguishable by code so callers can react
// appropriately.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error codes returned by the API.
const (
	codeInvalidRequest   = "invalid_request"
	codeValidationError  = "validation_error"
	codeInvalidDate      = "invalid_date"
	codePriorityBoundary = "priority_boundary"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// ownerHeader carries the caller-scoped identity when the deployment
// enforces per-owner data isolation. Empty means no scoping.
const ownerHeader = "X-Owner-ID"
