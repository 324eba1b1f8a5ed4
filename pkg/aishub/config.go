package aishub

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Format selects how vessel fields are encoded by the provider.
type Format int

const (
	// FormatAIS returns fields as raw AIS values.
	FormatAIS Format = 0

	// FormatHumanReadable returns fields translated to human-readable values.
	FormatHumanReadable Format = 1
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAIS:
		return "AIS"
	case FormatHumanReadable:
		return "human-readable"
	default:
		return "unknown"
	}
}

// Output selects the wire serialization of the response payload.
type Output string

const (
	OutputJSON Output = "json"
	OutputXML  Output = "xml"
	OutputCSV  Output = "csv"
)

// Compress selects the transport compression of the response payload.
type Compress int

const (
	CompressNone  Compress = 0
	CompressZip   Compress = 1
	CompressGzip  Compress = 2
	CompressBzip2 Compress = 3
)

// String returns the string representation of the compression selector.
func (c Compress) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressZip:
		return "zip"
	case CompressGzip:
		return "gzip"
	case CompressBzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// Config holds the per-account request settings sent with every call.
// Construct it once and reuse it; the client never mutates it, so a single
// value is safe to share across goroutines.
type Config struct {
	// Username is the account name issued by AISHub.
	Username string `validate:"required"`

	// Format selects raw AIS or human-readable field values.
	Format Format `validate:"oneof=0 1"`

	// Output selects the response serialization.
	Output Output `validate:"oneof=json xml csv"`

	// Compress selects the response transport compression.
	Compress Compress `validate:"oneof=0 1 2 3"`
}

// NewConfig returns a Config with the provider defaults: human-readable
// fields, JSON output, no compression.
func NewConfig(username string) Config {
	return Config{
		Username: username,
		Format:   FormatHumanReadable,
		Output:   OutputJSON,
		Compress: CompressNone,
	}
}

// Validate checks the configuration against the provider's accepted values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		fields := make(map[string]string)
		var validatorErrs validator.ValidationErrors
		if errors.As(err, &validatorErrs) {
			for _, validatorErr := range validatorErrs {
				fields[strings.ToLower(validatorErr.Field())] = validatorErr.Tag()
			}
		}

		return NewValidationError("invalid client configuration", fields)
	}

	return nil
}
