package main

import "github.com/hajimehoshi/ebiten/v2"

// windowContainer reports the size Ebitengine last laid the game out at.
type windowContainer struct {
	w, h int
}

func (c *windowContainer) Size() (w, h int) { return c.w, c.h }

func (c *windowContainer) DevicePixelRatio() float64 {
	return ebiten.DeviceScaleFactor()
}

// set records a new layout size, returning true if it changed.
func (c *windowContainer) set(w, h int) bool {
	if c.w == w && c.h == h {
		return false
	}
	c.w, c.h = w, h
	return true
}
