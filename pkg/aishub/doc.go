// Package aishub is a client for the AISHub vessel-tracking web service.
//
// A Client pairs an immutable Config (username, field format, output
// serialization, transport compression) with a Fetcher that performs the
// HTTP call. Each request builds a validated query parameter set, fetches
// the raw payload, reverses the transport compression, and normalizes one
// of the three provider wire formats (JSON, XML, CSV) into a single
// Response value: a header plus an ordered set of vessel records.
//
// Provider-side rejections (bad credentials, rate limits) are reported by
// the provider inside an otherwise well-formed payload. They surface as a
// successful parse with Header.HasError set, never as a Go error; callers
// must check HasError before using Records.
package aishub
