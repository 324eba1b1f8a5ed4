package aishub

import "fmt"

// ValidationError reports request input rejected before any network call.
// The caller can correct the input and retry; the client never retries
// internally.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  fields,
	}
}

// TransportReason classifies a transport failure.
type TransportReason string

const (
	// URLRequired means no usable service URL was available for the call.
	URLRequired TransportReason = "url_required"

	// ConnectionFailed means the HTTP call could not be completed.
	ConnectionFailed TransportReason = "connection_failed"
)

// TransportError reports a failure at the HTTP boundary. The call produced
// no payload; retrying is the caller's decision.
type TransportError struct {
	Reason TransportReason
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("transport %s", e.Reason)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new transport error.
func NewTransportError(reason TransportReason, url string, err error) *TransportError {
	return &TransportError{
		Reason: reason,
		URL:    url,
		Err:    err,
	}
}

// CodecReason classifies a decompression failure.
type CodecReason string

const (
	// MalformedArchive means a zip payload could not be opened or holds no entries.
	MalformedArchive CodecReason = "malformed_archive"

	// DecompressionFailed means a compressed stream was corrupt or mismatched
	// the selected compression.
	DecompressionFailed CodecReason = "decompression_failed"
)

// CodecError reports a payload that could not be decompressed with the
// configured selector. Fatal for the call; never retried.
type CodecError struct {
	Reason   CodecReason
	Compress Compress
	Err      error
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s codec %s: %v", e.Compress, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s codec %s", e.Compress, e.Reason)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCodecError creates a new codec error.
func NewCodecError(reason CodecReason, compress Compress, err error) *CodecError {
	return &CodecError{
		Reason:   reason,
		Compress: compress,
		Err:      err,
	}
}

// ParseError reports payload content that does not match the schema of the
// declared output serialization. Fatal for the call; no partial records are
// returned.
type ParseError struct {
	Output  Output
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Output, e.Message, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Output, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error.
func NewParseError(output Output, message string, err error) *ParseError {
	return &ParseError{
		Output:  output,
		Message: message,
		Err:     err,
	}
}
