package ghelper

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"xiangqi/src/base"
	"xiangqi/src/geometry"
	"xiangqi/src/ui/gui/gbase"
)

// RenderBoard draws the grid, river band and palace diagonals with gg.
// The returned rect is the world area covered by the image.
func RenderBoard(g geometry.Geometry, theme gbase.Palette, ppu float64) (*ebiten.Image, geometry.Rect) {
	b := g.Bounds()
	m := gbase.BoardMargin / 2
	rect := geometry.Rect{MinX: b.MinX - m, MinY: b.MinY - m, MaxX: b.MaxX + m, MaxY: b.MaxY + m}

	w, h := int(rect.W()*ppu), int(rect.H()*ppu)
	dc := gg.NewContext(w, h)
	toPx := func(wx, wy float64) (float64, float64) {
		return (wx - rect.MinX) * ppu, (rect.MaxY - wy) * ppu
	}

	setColor(dc, theme.Board)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	// river band between the centres of row 4 and row 5
	rx0, ry0 := toPx(g.CellToWorld(4, 0))
	rx1, ry1 := toPx(g.CellToWorld(5, base.NumColumns-1))
	setColor(dc, theme.River)
	dc.DrawRectangle(rx0, ry1, rx1-rx0, ry0-ry1)
	dc.Fill()

	line := func(r0, c0, r1, c1 int) {
		x0, y0 := toPx(g.CellToWorld(r0, c0))
		x1, y1 := toPx(g.CellToWorld(r1, c1))
		dc.DrawLine(x0, y0, x1, y1)
	}
	lastRow, lastCol := base.NumRows-1, base.NumColumns-1
	for r := 0; r <= lastRow; r++ {
		line(r, 0, r, lastCol)
	}
	for c := 0; c <= lastCol; c++ {
		if c == 0 || c == lastCol {
			line(0, c, lastRow, c)
			continue
		}
		line(0, c, 4, c)
		line(5, c, lastRow, c)
	}
	// palaces
	line(0, 3, 2, 5)
	line(0, 5, 2, 3)
	line(7, 3, 9, 5)
	line(7, 5, 9, 3)
	setColor(dc, theme.Line)
	dc.SetLineWidth(2)
	dc.Stroke()

	fx, fy := toPx(b.MinX-6, b.MaxY+6)
	dc.DrawRectangle(fx, fy, (b.W()+12)*ppu, (b.H()+12)*ppu)
	dc.SetLineWidth(4)
	dc.Stroke()

	return ebiten.NewImageFromImage(dc.Image()), rect
}

// RenderPiece draws a piece disc of radius r pixels, ringed in the side color
func RenderPiece(side base.Side, theme gbase.Palette, r float64) *ebiten.Image {
	d := int(2*r) + 2
	dc := gg.NewContext(d, d)
	c := float64(d) / 2

	dc.DrawCircle(c, c, r-1)
	setColor(dc, theme.PieceFill)
	dc.FillPreserve()
	setColor(dc, SideColor(side, theme))
	dc.SetLineWidth(3)
	dc.Stroke()

	dc.DrawCircle(c, c, r*0.78)
	dc.SetLineWidth(1.5)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func SideColor(side base.Side, theme gbase.Palette) color.RGBA {
	if side == base.Red {
		return theme.RedPiece
	}
	return theme.BlackPiece
}

func setColor(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}
