package uiprovider

import (
	"errors"
	"io"
	"testing"
)

func TestMemoryStream_Borrowed(t *testing.T) {
	t.Parallel()

	buf := []byte("hello world")
	s := NewMemoryStream(buf)

	if s.Owned() {
		t.Error("Owned() = true, want false")
	}
	if s.Size() != int64(len(buf)) {
		t.Errorf("Size() = %d, want %d", s.Size(), len(buf))
	}

	// A borrowed stream reads the caller's buffer in place.
	buf[0] = 'j'
	if got := string(readAll(t, s)); got != "jello world" {
		t.Errorf("ReadAll() = %q, want %q", got, "jello world")
	}
}

func TestMemoryStream_Owned(t *testing.T) {
	t.Parallel()

	buf := []byte("hello world")
	s := NewOwnedStream(buf)
	buf[0] = 'j'

	if !s.Owned() {
		t.Error("Owned() = false, want true")
	}
	if got := string(readAll(t, s)); got != "hello world" {
		t.Errorf("ReadAll() = %q, want %q", got, "hello world")
	}
}

func TestMemoryStream_SeekAndReadAt(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte("0123456789"))

	pos, err := s.Seek(-3, io.SeekEnd)
	if err != nil || pos != 7 {
		t.Fatalf("Seek() = (%d, %v), want (7, nil)", pos, err)
	}
	if got := string(readAll(t, s)); got != "789" {
		t.Errorf("read after Seek = %q, want 789", got)
	}

	p := make([]byte, 4)
	n, err := s.ReadAt(p, 2)
	if err != nil || n != 4 || string(p) != "2345" {
		t.Errorf("ReadAt() = (%d, %v, %q), want (4, nil, 2345)", n, err, p)
	}
}

func TestMemoryStream_Close(t *testing.T) {
	t.Parallel()

	s := NewOwnedStream([]byte("abc"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := s.Read(make([]byte, 1)); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Read() error = %v, want ErrStreamClosed", err)
	}
	if _, err := s.ReadAt(make([]byte, 1), 0); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("ReadAt() error = %v, want ErrStreamClosed", err)
	}
	if _, err := s.Seek(0, io.SeekStart); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Seek() error = %v, want ErrStreamClosed", err)
	}
	if s.Size() != 3 {
		t.Errorf("Size() after Close = %d, want 3", s.Size())
	}
}
