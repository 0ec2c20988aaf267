//go:build cgo

package hal

import (
	"image"

	"pangrid/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a resizable desktop window that displays the framebuffer
// and forwards pointer and keyboard input. The framebuffer follows the
// window size. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg.Width, cfg.Height, cfg.logOut())
	h.ptr.setWheelScale(cfg.WheelScale)
	step := newApp(h)

	g := &hostGame{h: h, step: step, outW: cfg.Width, outH: cfg.Height}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error

	// latest outside size reported by Layout
	outW, outH int
}

func (g *hostGame) Update() error {
	g.h.disp.resize(g.outW, g.outH)

	fb := g.h.disp.fb
	g.h.kbd.poll()
	g.h.ptr.poll(fb.width, fb.height)
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if fb.width <= 0 || fb.height <= 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	g.scratch = fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
