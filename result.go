package htmlqr

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a rendered QR code PNG and provides helpers for common
// output formats such as raw bytes, base64 encoding, and streaming readers.
//
// The underlying data is never modified, so its methods may be called
// any number of times.
type Result struct {
	data    []byte
	version int
}

// Bytes returns the raw PNG content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PNG encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the PNG content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PNG content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PNG to the file at path, replacing any
// existing file.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PNG in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Version returns the QR symbol version (1-40) chosen for the payload.
func (r *Result) Version() int {
	return r.version
}
