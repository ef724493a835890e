package executor

import "bytes"

// newByteReader adapts a raw byte slice to the io.Reader resty's
// SetFileReader expects for a multipart file part.
func newByteReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
