package hal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

func newHost(width, height int, logOut io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		disp:   newHostDisplay(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb      *hostFramebuffer
	resized chan struct{}
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		fb:      newHostFramebuffer(width, height),
		resized: make(chan struct{}, 1),
	}
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d *hostDisplay) Resized() <-chan struct{} { return d.resized }

// resize reallocates the framebuffer and signals the app when the size
// actually changed.
func (d *hostDisplay) resize(width, height int) bool {
	if !d.fb.resize(width, height) {
		return false
	}
	select {
	case d.resized <- struct{}{}:
	default:
	}
	return true
}

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// LogWriter adapts a line logger to an io.Writer, one line per
// newline-terminated chunk. It is meant as a slog handler sink.
func LogWriter(l Logger) io.Writer {
	return &lineWriter{l: l}
}

type lineWriter struct {
	mu  sync.Mutex
	l   Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		if w.l != nil {
			w.l.WriteLineBytes(w.buf[:i])
		}
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = nil
	}
	return len(p), nil
}
