package password_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/flowexec/password"
)

func TestWriteTo(t *testing.T) {
	p := password.FromString("emit-me")

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(p.Len()) {
		t.Errorf("WriteTo wrote %d bytes, want %d", n, p.Len())
	}
	if got := buf.String(); got != "emit-me" {
		t.Errorf("written content = %q", got)
	}
}

func TestReadFromAccumulates(t *testing.T) {
	p := password.FromString("prefix-")

	n, err := p.ReadFrom(strings.NewReader("suffix"))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if n != 6 {
		t.Errorf("ReadFrom read %d bytes, want 6", n)
	}
	// Prior content is kept; new content accumulates after it.
	if got := p.PlainText(); got != "prefix-suffix" {
		t.Errorf("content = %q", got)
	}
}

func TestReadFromLargeSource(t *testing.T) {
	src := strings.Repeat("abcdefgh", 400) // crosses several chunk boundaries
	p := password.New()

	n, err := p.ReadFrom(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if n != int64(len(src)) {
		t.Errorf("ReadFrom read %d bytes, want %d", n, len(src))
	}
	if got := p.PlainText(); got != src {
		t.Errorf("content mismatch after chunked read")
	}
}

func TestReadFromPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	p := password.New()

	_, err := p.ReadFrom(io.MultiReader(strings.NewReader("par"), &failReader{err: boom}))
	if !errors.Is(err, boom) {
		t.Errorf("ReadFrom error = %v, want %v", err, boom)
	}
	// Bytes read before the failure were appended.
	if got := p.PlainText(); got != "par" {
		t.Errorf("partial content = %q", got)
	}
}

type failReader struct {
	err error
}

func (r *failReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestReadLine(t *testing.T) {
	src := strings.NewReader("username\npassword\nrest")
	p := password.New()

	if err := password.ReadLine(src, p); err != nil {
		t.Fatalf("first ReadLine failed: %v", err)
	}
	if got := p.PlainText(); got != "username" {
		t.Errorf("first line = %q", got)
	}

	// ReadLine clears the target before reading the next line.
	if err := password.ReadLine(src, p); err != nil {
		t.Fatalf("second ReadLine failed: %v", err)
	}
	if got := p.PlainText(); got != "password" {
		t.Errorf("second line = %q", got)
	}

	// The final segment has no delimiter; EOF with data is not an error.
	if err := password.ReadLine(src, p); err != nil {
		t.Fatalf("third ReadLine failed: %v", err)
	}
	if got := p.PlainText(); got != "rest" {
		t.Errorf("third line = %q", got)
	}

	// A drained source yields io.EOF and an empty target.
	if err := password.ReadLine(src, p); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine on drained source error = %v, want io.EOF", err)
	}
	if !p.Empty() {
		t.Errorf("target not cleared on EOF: %q", p.PlainText())
	}
}

func TestReadLineDelim(t *testing.T) {
	src := strings.NewReader("alpha:beta")
	p := password.FromString("stale")

	if err := password.ReadLineDelim(src, p, ':'); err != nil {
		t.Fatalf("ReadLineDelim failed: %v", err)
	}
	if got := p.PlainText(); got != "alpha" {
		t.Errorf("content = %q", got)
	}
}

func TestReadLineLongerThanChunk(t *testing.T) {
	long := strings.Repeat("x", 3000)
	src := strings.NewReader(long + "\ntail")
	p := password.New()

	if err := password.ReadLine(src, p); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if p.Len() != len(long) {
		t.Errorf("line length = %d, want %d", p.Len(), len(long))
	}
	if got := p.PlainText(); got != long {
		t.Errorf("long line content mismatch")
	}
}

func TestReadLinePlainReader(t *testing.T) {
	// A reader that is not an io.ByteReader takes the single-byte path.
	src := &rawReader{data: []byte("plain\nrest")}
	p := password.New()

	if err := password.ReadLine(src, p); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got := p.PlainText(); got != "plain" {
		t.Errorf("content = %q", got)
	}
}

type rawReader struct {
	data []byte
	off  int
}

func (r *rawReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}
