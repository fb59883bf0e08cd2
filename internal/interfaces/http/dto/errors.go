package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface.
const (
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeAlreadyExists          = "ALREADY_EXISTS"
	ErrCodeInvalidRequest         = "INVALID_REQUEST"
	ErrCodeUnauthorized           = "UNAUTHORIZED"
	ErrCodeIllegalStateTransition = "ILLEGAL_STATE_TRANSITION"
	ErrCodeStreaming              = "STREAMING_ERROR"
	ErrCodeInternal               = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeAlreadyExists:          http.StatusConflict,
	ErrCodeInvalidRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:           http.StatusUnauthorized,
	ErrCodeIllegalStateTransition: http.StatusUnprocessableEntity,
	ErrCodeStreaming:              http.StatusInternalServerError,
	ErrCodeInternal:               http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code, 500 for unknown codes
func HTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
