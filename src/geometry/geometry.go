// Package geometry converts logical board cells into world coordinates.
//
// World space has its origin at the bottom left of the arena and y grows up.
// The board is not a uniform grid: a river band of fixed width separates
// row 4 from row 5, so the vertical transform is piecewise and split at the
// midline.
package geometry

import (
	"fmt"
	"math"

	"xiangqi/src/base"
)

const (
	ArenaWidth  float64 = 800.0
	ArenaHeight float64 = 600.0
	CellWidth   float64 = 100.0
	CellHeight  float64 = 102.0
	RiverWidth  float64 = 104.0
	BoardScale  float64 = 0.60

	MidRow    float64 = 4.5
	MidColumn float64 = 4.0

	// half width of the axis-aligned hit box around a piece, in world units
	HitboxHalfWidth float64 = 30.0
)

// MidlineRounding selects how the row distance to the midline is rounded
// before it is multiplied by the cell height.
type MidlineRounding uint8

const (
	RoundFloor MidlineRounding = iota
	RoundTrunc
)

func (r MidlineRounding) String() string {
	switch r {
	case RoundFloor:
		return "floor"
	case RoundTrunc:
		return "trunc"
	default:
		return "invalid"
	}
}

func MidlineRoundingFromString(s string) (MidlineRounding, error) {
	switch s {
	case "floor", "":
		return RoundFloor, nil
	case "trunc":
		return RoundTrunc, nil
	default:
	}
	return RoundFloor, fmt.Errorf("unknown midline rounding %q", s)
}

type Geometry struct {
	ArenaWidth  float64
	ArenaHeight float64
	CellWidth   float64
	CellHeight  float64
	RiverWidth  float64
	Scale       float64
	Rounding    MidlineRounding
}

func Default() Geometry {
	return Geometry{
		ArenaWidth:  ArenaWidth,
		ArenaHeight: ArenaHeight,
		CellWidth:   CellWidth,
		CellHeight:  CellHeight,
		RiverWidth:  RiverWidth,
		Scale:       BoardScale,
		Rounding:    RoundFloor,
	}
}

func (g Geometry) round(v float64) float64 {
	if g.Rounding == RoundTrunc {
		return math.Trunc(v)
	}
	return math.Floor(v)
}

func (g Geometry) riverOffset(row int) float64 {
	if float64(row) < MidRow {
		return g.RiverWidth / 2
	}
	return -g.RiverWidth / 2
}

// CellToWorld returns the world position of the centre of a cell.
// No bounds checking is done: cells outside the 10x9 grid extrapolate
// linearly from the nearest half of the board.
func (g Geometry) CellToWorld(row, column int) (float64, float64) {
	x := g.ArenaWidth/2 - g.Scale*(MidColumn-float64(column))*g.CellWidth
	y := g.ArenaHeight/2 - g.Scale*(g.round(MidRow-float64(row))*g.CellHeight+g.riverOffset(row))
	return x, y
}

func (g Geometry) CellCenter(c base.Cell) (float64, float64) {
	return g.CellToWorld(c.Row, c.Column)
}

// Rect is an axis-aligned world rectangle, Min is the bottom left corner
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (r Rect) W() float64 { return r.MaxX - r.MinX }
func (r Rect) H() float64 { return r.MaxY - r.MinY }

// Bounds returns the rectangle spanned by the centres of all board cells.
func (g Geometry) Bounds() Rect {
	x0, y0 := g.CellToWorld(0, 0)
	x1, y1 := g.CellToWorld(base.NumRows-1, base.NumColumns-1)
	return Rect{
		MinX: math.Min(x0, x1), MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1), MaxY: math.Max(y0, y1),
	}
}

// InHitbox reports whether the world point lies strictly inside the hit box
// centred on (cx, cy).
func InHitbox(cx, cy, wx, wy float64) bool {
	return math.Abs(cx-wx) < HitboxHalfWidth && math.Abs(cy-wy) < HitboxHalfWidth
}
