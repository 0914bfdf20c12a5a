// Package layout holds starting positions and reads/writes layout files.
package layout

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"xiangqi/src/base"
	"xiangqi/src/store"
)

type Placement struct {
	Kind base.PieceKind
	Side base.Side
	Cell base.Cell
}

type Layout []Placement

// StartingCell is the canonical cell of the first piece of each kind.
// Pieces with more than one copy (pawns, horses, ...) have no placement
// rule for the other copies yet.
func StartingCell(kind base.PieceKind, side base.Side) base.Cell {
	switch side {
	case base.Red:
		switch kind {
		case base.Pawn:
			return base.Cell{Row: 3, Column: 0}
		case base.Horse:
			return base.Cell{Row: 0, Column: 1}
		case base.Cannon:
			return base.Cell{Row: 2, Column: 1}
		case base.Elephant:
			return base.Cell{Row: 0, Column: 2}
		case base.Scholar:
			return base.Cell{Row: 0, Column: 3}
		case base.Chariot:
			return base.Cell{Row: 0, Column: 0}
		case base.General:
			return base.Cell{Row: 0, Column: 4}
		}
	case base.Black:
		switch kind {
		case base.Pawn:
			return base.Cell{Row: 6, Column: 0}
		case base.Horse:
			return base.Cell{Row: 9, Column: 1}
		case base.Cannon:
			return base.Cell{Row: 2, Column: 1}
		case base.Elephant:
			return base.Cell{Row: 7, Column: 2}
		case base.Scholar:
			return base.Cell{Row: 9, Column: 3}
		case base.Chariot:
			return base.Cell{Row: 9, Column: 0}
		case base.General:
			return base.Cell{Row: 9, Column: 4}
		}
	}
	return base.Cell{}
}

// Prototype is the single red chariot the game starts with
func Prototype() Layout {
	return Layout{{Kind: base.Chariot, Side: base.Red, Cell: StartingCell(base.Chariot, base.Red)}}
}

// Canonical places one piece for every (kind, side) pair
func Canonical() Layout {
	var l Layout
	for _, side := range []base.Side{base.Red, base.Black} {
		for _, k := range base.AllKinds {
			l = append(l, Placement{Kind: k, Side: side, Cell: StartingCell(k, side)})
		}
	}
	return l
}

// Apply replaces the store content with the layout
func (l Layout) Apply(s *store.Store) {
	s.Reset()
	for _, p := range l {
		s.Add(p.Kind, p.Side, p.Cell)
	}
}

func FromStore(s *store.Store) Layout {
	var l Layout
	for _, p := range s.Pieces() {
		l = append(l, Placement{Kind: p.Kind, Side: p.Side, Cell: p.Cell})
	}
	return l
}

// ---- File format ----

type filePiece struct {
	Kind   string `yaml:"kind"`
	Side   string `yaml:"side"`
	Row    int    `yaml:"row"`
	Column int    `yaml:"column"`
}

type file struct {
	Pieces []filePiece `yaml:"pieces"`
}

func Parse(data []byte) (Layout, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decode layout: %w", err)
	}
	l := make(Layout, 0, len(f.Pieces))
	for i, fp := range f.Pieces {
		k, err := base.KindFromString(fp.Kind)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w: %q", i, err, fp.Kind)
		}
		sd, err := base.SideFromString(fp.Side)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w: %q", i, err, fp.Side)
		}
		c := base.Cell{Row: fp.Row, Column: fp.Column}
		if !base.IsValidCell(c) {
			return nil, fmt.Errorf("piece %d: %w: (%d,%d)", i, base.ErrCellOutOfRange, c.Row, c.Column)
		}
		l = append(l, Placement{Kind: k, Side: sd, Cell: c})
	}
	return l, nil
}

func Read(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error read layout: %w", err)
	}
	return Parse(data)
}

func (l Layout) Marshal() ([]byte, error) {
	f := file{Pieces: make([]filePiece, 0, len(l))}
	for _, p := range l {
		f.Pieces = append(f.Pieces, filePiece{
			Kind:   p.Kind.String(),
			Side:   p.Side.String(),
			Row:    p.Cell.Row,
			Column: p.Cell.Column,
		})
	}
	return yaml.Marshal(&f)
}
