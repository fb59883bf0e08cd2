package dto

import "time"

// Envelope is the standard API response wrapper
type Envelope struct {
	Status   string     `json:"status"`
	Message  string     `json:"message,omitempty"`
	DateTime time.Time  `json:"dateTime"`
	Data     any        `json:"data,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

const (
	// StatusSuccess marks a successful response
	StatusSuccess = "success"
	// StatusError marks a failed response
	StatusError = "error"
)

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data any) Envelope {
	return Envelope{
		Status:   StatusSuccess,
		DateTime: time.Now().UTC(),
		Data:     data,
	}
}

// NewErrorResponse builds an error envelope from a code and message
func NewErrorResponse(code, message string) Envelope {
	return Envelope{
		Status:   StatusError,
		Message:  message,
		DateTime: time.Now().UTC(),
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails builds an error envelope carrying structured
// details, used for validation failures
func NewErrorResponseWithDetails(code, message string, details any) Envelope {
	return Envelope{
		Status:   StatusError,
		Message:  message,
		DateTime: time.Now().UTC(),
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
