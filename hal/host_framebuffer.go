package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// resize reallocates the buffer. It reports whether the size changed.
func (f *hostFramebuffer) resize(width, height int) bool {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.buf != nil && width == f.width && height == f.height {
		return false
	}
	f.width = width
	f.height = height
	f.stride = width * 2
	f.buf = make([]byte, f.stride*height)
	return true
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(dst) < len(f.buf) {
		dst = make([]byte, len(f.buf))
	}
	dst = dst[:len(f.buf)]
	copy(dst, f.buf)
	return dst
}

// pixelRGB returns the pixel at (x, y) as 8-bit channels.
func (f *hostFramebuffer) pixelRGB(x, y int) (r, g, b uint8) {
	off := y*f.stride + x*2
	if x < 0 || y < 0 || x >= f.width || y >= f.height || off+1 >= len(f.buf) {
		return 0, 0, 0
	}
	return RGB888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}
