package src

import (
	"fmt"
	"io"

	"xiangqi/src/base"
	"xiangqi/src/geometry"
	"xiangqi/src/layout"
	"xiangqi/src/logx"
	"xiangqi/src/picking"
	"xiangqi/src/store"
)

// at first use Create* methods
type Game struct {
	geom   geometry.Geometry
	pieces *store.Store
	engine *picking.Engine
	logger logx.Logger

	// handles highlighted after the last completed pass
	hovered []store.Handle
}

func NewGame(g geometry.Geometry, logger logx.Logger) *Game {
	s := store.NewStore()
	return &Game{
		geom:   g,
		pieces: s,
		engine: picking.NewEngine(g, nil, nil, s, logger),
		logger: logger,
	}
}

func (gm *Game) CreatePrototype() {
	gm.logger.Debug("create prototype game")
	gm.LoadLayout(layout.Prototype())
}

func (gm *Game) CreateCanonical() {
	gm.logger.Debug("create canonical game")
	gm.LoadLayout(layout.Canonical())
}

func (gm *Game) CreateFromLayout(r io.Reader) error {
	gm.logger.Debug("create game by layout file")
	l, err := layout.Read(r)
	if err != nil {
		return fmt.Errorf("error parse layout: %w", err)
	}
	gm.LoadLayout(l)
	return nil
}

func (gm *Game) LoadLayout(l layout.Layout) {
	l.Apply(gm.pieces)
	gm.hovered = nil
	gm.logger.Infof("layout loaded: %d pieces", len(l))
}

func (gm *Game) LayoutYAML() ([]byte, error) {
	return layout.FromStore(gm.pieces).Marshal()
}

func (gm *Game) Geometry() geometry.Geometry {
	return gm.geom
}

func (gm *Game) Store() *store.Store {
	return gm.pieces
}

func (gm *Game) Pieces() []base.Piece {
	return gm.pieces.Pieces()
}

func (gm *Game) SetPointer(p picking.Pointer) {
	gm.engine.SetPointer(p)
}

func (gm *Game) SetProjector(p picking.Projector) {
	gm.engine.SetProjector(p)
}

// Update runs one picking pass for the tick
func (gm *Game) Update(screenW, screenH float64) (picking.Result, bool) {
	res, ok := gm.engine.Update(screenW, screenH)
	if !ok {
		return res, false
	}
	if !sameHandles(gm.hovered, res.Highlighted) {
		for _, h := range res.Highlighted {
			if p, found := gm.pieces.Get(h); found {
				gm.logger.Debugf("hover %v %v at (%d,%d)", p.Side, p.Kind, p.Cell.Row, p.Cell.Column)
			}
		}
		gm.hovered = append(gm.hovered[:0], res.Highlighted...)
	}
	return res, true
}

func sameHandles(a, b []store.Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
