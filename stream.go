package uiprovider

import (
	"bytes"
	"io"
)

// Stream is a read-only, seekable view over asset bytes.
type Stream interface {
	io.ReadSeekCloser
	io.ReaderAt

	// Size returns the total length in bytes.
	Size() int64
}

var _ Stream = (*MemoryStream)(nil)

// MemoryStream is a Stream over a byte slice. A borrowed stream reads the
// caller's buffer in place; an owned stream holds its own buffer until
// closed. Not safe for concurrent use.
type MemoryStream struct {
	r     *bytes.Reader
	size  int64
	owned bool
}

// NewMemoryStream returns a stream that borrows data. The caller must keep
// data unchanged while the stream is in use.
func NewMemoryStream(data []byte) *MemoryStream {
	return &MemoryStream{r: bytes.NewReader(data), size: int64(len(data))}
}

// NewOwnedStream returns a stream over a private copy of data.
func NewOwnedStream(data []byte) *MemoryStream {
	return ownStream(bytes.Clone(data))
}

// ownStream takes ownership of buf without copying.
func ownStream(buf []byte) *MemoryStream {
	s := NewMemoryStream(buf)
	s.owned = true
	return s
}

// Owned reports whether the stream holds its own buffer.
func (s *MemoryStream) Owned() bool {
	return s.owned
}

func (s *MemoryStream) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrStreamClosed
	}
	return s.r.Read(p)
}

func (s *MemoryStream) ReadAt(p []byte, off int64) (int, error) {
	if s.r == nil {
		return 0, ErrStreamClosed
	}
	return s.r.ReadAt(p, off)
}

func (s *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	if s.r == nil {
		return 0, ErrStreamClosed
	}
	return s.r.Seek(offset, whence)
}

// Size returns the length of the underlying buffer, also after Close.
func (s *MemoryStream) Size() int64 {
	return s.size
}

// Close releases the buffer. Further reads return ErrStreamClosed.
func (s *MemoryStream) Close() error {
	s.r = nil
	return nil
}
