// Package picking resolves the pointer position into the pieces under it.
//
// Once per tick the engine turns the screen-space pointer into a world ray,
// intersects the ray with the board plane z = 0 and recomputes the highlight
// flag of every piece from scratch with an axis-aligned box test.
package picking

import (
	"errors"

	"xiangqi/src/base"
	"xiangqi/src/geometry"
	"xiangqi/src/logx"
	"xiangqi/src/store"
)

// BoardPlaneZ is the z of the plane the board is rendered on
const BoardPlaneZ float64 = 0

var (
	ErrNoPointerSample      = errors.New("no pointer sample")
	ErrDegenerateProjection = errors.New("pointer ray does not cross the board plane")
)

// Pointer reports the cursor position in screen pixels.
// ok is false when no position is available yet.
type Pointer interface {
	CursorPosition() (x, y float64, ok bool)
}

// Projector maps a screen point to a world-space ray.
type Projector interface {
	ScreenPointToRay(x, y, screenW, screenH float64) Ray
}

// PieceStore is the part of the store the engine needs: it reads cells and
// writes highlight flags, nothing else.
type PieceStore interface {
	Each(fn func(h store.Handle, cell base.Cell, highlighted *bool))
}

// Result of one picking pass
type Result struct {
	WorldX, WorldY float64
	Highlighted    []store.Handle
}

type Engine struct {
	geom      geometry.Geometry
	pointer   Pointer
	projector Projector
	pieces    PieceStore
	logger    logx.Logger
}

// NewEngine builds an engine. A nil projector means there is no camera yet
// and screen coordinates are taken as world coordinates.
func NewEngine(g geometry.Geometry, p Pointer, proj Projector, pieces PieceStore, logger logx.Logger) *Engine {
	return &Engine{geom: g, pointer: p, projector: proj, pieces: pieces, logger: logger}
}

func (e *Engine) SetProjector(proj Projector) {
	e.projector = proj
}

func (e *Engine) SetPointer(p Pointer) {
	e.pointer = p
}

// WorldPoint returns the board-plane world point under the pointer.
func (e *Engine) WorldPoint(screenW, screenH float64) (float64, float64, error) {
	if e.pointer == nil {
		return 0, 0, ErrNoPointerSample
	}
	sx, sy, ok := e.pointer.CursorPosition()
	if !ok {
		return 0, 0, ErrNoPointerSample
	}
	if e.projector == nil {
		return sx, sy, nil
	}

	ray := e.projector.ScreenPointToRay(sx, sy, screenW, screenH)
	d, ok := ray.IntersectPlane(BoardPlaneZ)
	if !ok {
		return 0, 0, ErrDegenerateProjection
	}
	p := ray.PointAt(d)
	return p.X, p.Y, nil
}

// Pick runs one pass. On error no highlight flag is touched.
func (e *Engine) Pick(screenW, screenH float64) (Result, error) {
	wx, wy, err := e.WorldPoint(screenW, screenH)
	if err != nil {
		return Result{}, err
	}

	res := Result{WorldX: wx, WorldY: wy}
	e.pieces.Each(func(h store.Handle, cell base.Cell, highlighted *bool) {
		px, py := e.geom.CellCenter(cell)
		hit := geometry.InHitbox(px, py, wx, wy)
		*highlighted = hit
		if hit {
			res.Highlighted = append(res.Highlighted, h)
		}
	})
	return res, nil
}

// Update is the per-tick entry point: skipped passes are logged and leave
// every piece as it was.
func (e *Engine) Update(screenW, screenH float64) (Result, bool) {
	res, err := e.Pick(screenW, screenH)
	if err != nil {
		e.logger.Debugf("skip pick: %v", err)
		return Result{}, false
	}
	return res, true
}
