package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// CtrlC is the byte a raw terminal delivers for Ctrl-C.
const CtrlC = 0x03

// ErrNotTerminal is returned by MakeRaw when the file is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Clear homes the cursor and erases the screen.
func Clear(w io.Writer) {
	io.WriteString(w, "\x1b[H\x1b[2J")
}

// MoveTo places the cursor at the 1-based (line, column).
func MoveTo(w io.Writer, line, col int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", line, col)
}

// MakeRaw switches f into raw mode for single keystroke input and returns
// the func that restores the previous mode.
func MakeRaw(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() error { return xterm.Restore(fd, state) }, nil
}

// KeyReader reads single keystrokes.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey returns the next byte of input.
func (k *KeyReader) ReadKey() (byte, error) {
	return k.r.ReadByte()
}

// RawWriter translates "\n" into "\r\n" since raw mode disables output
// post-processing.
type RawWriter struct {
	w io.Writer
}

// NewRawWriter wraps w.
func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{w: w}
}

func (rw *RawWriter) Write(p []byte) (int, error) {
	start := 0
	for i, ch := range p {
		if ch != '\n' || (i > 0 && p[i-1] == '\r') {
			continue
		}
		if _, err := rw.w.Write(p[start:i]); err != nil {
			return start, err
		}
		if _, err := io.WriteString(rw.w, "\r\n"); err != nil {
			return i, err
		}
		start = i + 1
	}
	if _, err := rw.w.Write(p[start:]); err != nil {
		return start, err
	}
	return len(p), nil
}
