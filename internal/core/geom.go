// Package core holds the types shared by the runner and the terminal
// platform: geometry, the screen buffer, input frames and gameplay events.
// It imports nothing outside the standard library so game logic can be
// tested without a terminal.
package core

import "math"

// Rect is an axis-aligned area in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Box is an axis-aligned area in canvas units, used for collision.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps reports whether the boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
