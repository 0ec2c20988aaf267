package hal

import (
	"io"
	"os"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	WheelScale float64
	// LogOut receives log lines; nil means stdout.
	LogOut io.Writer
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "pangrid"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.WheelScale <= 0 {
		c.WheelScale = DefaultWheelScale
	}
	return c
}

func (c WindowConfig) logOut() io.Writer {
	if c.LogOut == nil {
		return os.Stdout
	}
	return c.LogOut
}

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	Hz         int
	WheelScale float64
	// LogOut receives log lines; nil discards them since stdout is the screen.
	LogOut io.Writer
}

func (c TerminalConfig) withDefaults() TerminalConfig {
	if c.Hz <= 0 {
		c.Hz = 30
	}
	if c.WheelScale <= 0 {
		// Terminal wheel events are coarse; one step is a couple of rows.
		c.WheelScale = 4
	}
	if c.LogOut == nil {
		c.LogOut = io.Discard
	}
	return c
}
