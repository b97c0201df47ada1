// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// ErrorResponse is the JSON error envelope. Quote routes answer failures
// with bare status codes; the envelope is reserved for recovered panics.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "INTERNAL_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// ErrorCodeInternal is the code of a recovered panic.
const ErrorCodeInternal = "INTERNAL_ERROR"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithTraceID adds a trace ID to the error response. An empty id is ignored.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	if traceID != "" {
		e.TraceID = traceID
	}

	return e
}

// TraceIDFromContext returns the hex trace id of the active span, or "".
func TraceIDFromContext(ctx context.Context) string {
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
