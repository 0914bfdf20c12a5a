package ghelper

import "github.com/hajimehoshi/ebiten/v2"

// CursorPointer adapts the ebiten cursor to picking.Pointer. ebiten reports
// a position even before the mouse has moved, so the pointer stays absent
// until the first movement and while the cursor is outside the window.
type CursorPointer struct {
	started bool
	moved   bool
	inside  bool
	startX  int
	startY  int
	x, y    int
}

func NewCursorPointer() *CursorPointer {
	return &CursorPointer{}
}

// Poll reads the cursor, call once per Update before picking
func (p *CursorPointer) Poll(screenW, screenH int) {
	x, y := ebiten.CursorPosition()
	p.Sample(x, y, screenW, screenH)
}

func (p *CursorPointer) Sample(x, y, screenW, screenH int) {
	if !p.started {
		p.started = true
		p.startX, p.startY = x, y
	} else if x != p.startX || y != p.startY {
		p.moved = true
	}
	p.x, p.y = x, y
	p.inside = x >= 0 && y >= 0 && x < screenW && y < screenH
}

func (p *CursorPointer) CursorPosition() (float64, float64, bool) {
	return float64(p.x), float64(p.y), p.moved && p.inside
}
