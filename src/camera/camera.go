// Package camera is an orthographic 2D camera looking down the z axis at
// the board. It turns screen points into world rays for picking and world
// points back into screen points for drawing.
package camera

import (
	"xiangqi/src/geometry"
	"xiangqi/src/picking"
)

type Ortho struct {
	// camera position, the view is centred on (X, Y)
	X, Y, Z float64
	// size of the visible world area
	ViewW, ViewH float64
}

// Standard2D covers the whole arena with (0, 0) at the bottom left
func Standard2D(arenaW, arenaH float64) *Ortho {
	return &Ortho{X: arenaW / 2, Y: arenaH / 2, Z: 1, ViewW: arenaW, ViewH: arenaH}
}

// FitRect centres the view on r with margin on every side, grown along one
// axis so the view matches the screen aspect ratio.
func FitRect(r geometry.Rect, margin, screenW, screenH float64) *Ortho {
	w := r.W() + 2*margin
	h := r.H() + 2*margin
	if screenW > 0 && screenH > 0 {
		aspect := screenW / screenH
		if w/h < aspect {
			w = h * aspect
		} else {
			h = w / aspect
		}
	}
	return &Ortho{
		X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2, Z: 1,
		ViewW: w, ViewH: h,
	}
}

// ScreenPointToRay implements picking.Projector. Screen y grows down, world
// y grows up.
func (c *Ortho) ScreenPointToRay(x, y, screenW, screenH float64) picking.Ray {
	ndcX := 2*x/screenW - 1
	ndcY := 1 - 2*y/screenH
	return picking.Ray{
		Origin: picking.Vec3{X: c.X + ndcX*c.ViewW/2, Y: c.Y + ndcY*c.ViewH/2, Z: c.Z},
		Dir:    picking.Vec3{X: 0, Y: 0, Z: -1},
	}
}

func (c *Ortho) WorldToScreen(wx, wy, screenW, screenH float64) (float64, float64) {
	sx := ((wx-c.X)/(c.ViewW/2) + 1) * screenW / 2
	sy := (1 - (wy-c.Y)/(c.ViewH/2)) * screenH / 2
	return sx, sy
}

// PixelsPerUnit is the screen size of one world unit along each axis
func (c *Ortho) PixelsPerUnit(screenW, screenH float64) (float64, float64) {
	return screenW / c.ViewW, screenH / c.ViewH
}
