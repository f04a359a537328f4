// Package id names the middleware the Connect client installs on every
// operation stack. Custom middleware can be positioned relative to these IDs.
package id

// Initialize step.
const (
	OperationIdempotencyTokenAutoFill = "OperationIdempotencyTokenAutoFill"
	OperationInputValidation          = "OperationInputValidation"
	Tracing                           = "Tracing"
	Metrics                           = "Metrics"
)

// Serialize step.
const (
	OperationSerializer = "OperationSerializer"
)

// Build step.
const (
	ComputeContentLength = "ComputeContentLength"
)

// Finalize step.
const (
	// Signing adds the SigV4 Authorization header.
	Signing = "Signing"
)

// Deserialize step.
const (
	OperationDeserializer = "OperationDeserializer"

	// CloseResponseBody drains and closes the body after a successful call.
	CloseResponseBody = "CloseResponseBody"

	// ErrorCloseResponseBody drains and closes the body of a failed call.
	ErrorCloseResponseBody = "ErrorCloseResponseBody"
)
