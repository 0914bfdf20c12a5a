package cli

// VirtualPointer is a keyboard driven cursor on a virtual screen
type VirtualPointer struct {
	X, Y    float64
	Present bool
	W, H    float64
}

func NewVirtualPointer(w, h float64) *VirtualPointer {
	return &VirtualPointer{W: w, H: h}
}

func (p *VirtualPointer) CursorPosition() (float64, float64, bool) {
	return p.X, p.Y, p.Present
}

// Move shifts the pointer, clamped to the screen. The first move places the
// pointer in the middle of the screen.
func (p *VirtualPointer) Move(dx, dy float64) {
	if !p.Present {
		p.Present = true
		p.X, p.Y = p.W/2, p.H/2
		return
	}
	p.X = clamp(p.X+dx, 0, p.W-1)
	p.Y = clamp(p.Y+dy, 0, p.H-1)
}

func (p *VirtualPointer) Set(x, y float64) {
	p.X, p.Y, p.Present = x, y, true
}

func (p *VirtualPointer) Hide() {
	p.Present = false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
