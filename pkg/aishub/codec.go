package aishub

import (
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// Decompress reverses the transport compression selected by c and returns
// the serialized payload text. It is a pure function of its inputs.
//
// The selector set is closed; a value outside it is a programming error and
// panics rather than returning an error.
func Decompress(c Compress, payload []byte) ([]byte, error) {
	switch c {
	case CompressNone:
		return payload, nil
	case CompressZip:
		return unzipFirstEntry(payload)
	case CompressGzip:
		return gunzip(payload)
	case CompressBzip2:
		text, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return nil, NewCodecError(DecompressionFailed, CompressBzip2, err)
		}
		return text, nil
	default:
		panic(fmt.Sprintf("aishub: unknown compression selector %d", int(c)))
	}
}

// unzipFirstEntry extracts the single entry the provider places in a zip
// payload.
func unzipFirstEntry(payload []byte) ([]byte, error) {
	archive, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, NewCodecError(MalformedArchive, CompressZip, err)
	}
	if len(archive.File) == 0 {
		return nil, NewCodecError(MalformedArchive, CompressZip, errors.New("archive holds no entries"))
	}

	entry, err := archive.File[0].Open()
	if err != nil {
		return nil, NewCodecError(MalformedArchive, CompressZip, err)
	}
	defer entry.Close()

	text, err := io.ReadAll(entry)
	if err != nil {
		return nil, NewCodecError(MalformedArchive, CompressZip, err)
	}

	return text, nil
}

func gunzip(payload []byte) ([]byte, error) {
	stream, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, NewCodecError(DecompressionFailed, CompressGzip, err)
	}
	defer stream.Close()

	text, err := io.ReadAll(stream)
	if err != nil {
		return nil, NewCodecError(DecompressionFailed, CompressGzip, err)
	}

	return text, nil
}
