package ipfsapi

import "fmt"

// SendError wraps a transport-level failure dispatching a request to the
// daemon or the gateway.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send request: %v", e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// ResponseError means the daemon responded with a non-success HTTP status.
// It carries the status code for diagnostics.
type ResponseError struct {
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}

// JSONPayloadError means the response body could not be decoded as the
// expected JSON shape.
type JSONPayloadError struct {
	Err error
}

func (e *JSONPayloadError) Error() string {
	return fmt.Sprintf("decode json payload: %v", e.Err)
}

func (e *JSONPayloadError) Unwrap() error {
	return e.Err
}

// PayloadError means the response body could not be read.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("read payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}
