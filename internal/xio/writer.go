package xio

import (
	"io"
)

// NopWriteCloser wraps a writer with a no-op Close, for encoders that insist
// on an io.WriteCloser.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
