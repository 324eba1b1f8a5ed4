package testutil

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"testing"
)

// JSONPayload builds a wire-format JSON payload: a two-element array of
// header object and record array. Pass nil records to emit a header-only
// payload, as the provider does on rejections.
func JSONPayload(t *testing.T, header map[string]any, records []map[string]any) []byte {
	t.Helper()

	elements := []any{header}
	if records != nil {
		elements = append(elements, records)
	}

	payload, err := json.Marshal(elements)
	if err != nil {
		t.Fatalf("marshal JSON payload: %v", err)
	}
	return payload
}

// GzipPayload compresses data the way the provider does for compress=2.
func GzipPayload(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close gzip payload: %v", err)
	}
	return buf.Bytes()
}

// ZipPayload wraps data in a single-entry zip archive the way the provider
// does for compress=1.
func ZipPayload(t *testing.T, name string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create(name)
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := entry.Write(data); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip payload: %v", err)
	}
	return buf.Bytes()
}

// EmptyZipPayload builds a zip archive with no entries.
func EmptyZipPayload(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := zip.NewWriter(&buf).Close(); err != nil {
		t.Fatalf("close empty zip payload: %v", err)
	}
	return buf.Bytes()
}
