package store

import "xiangqi/src/base"

// Handle is an opaque index of a piece inside a Store
type Handle uint32

type entry struct {
	handle Handle
	piece  base.Piece
}

// Store keeps pieces in insertion order, which is also the scan order
// used by picking.
type Store struct {
	next    Handle
	entries []entry
}

func NewStore() *Store {
	return &Store{next: 1}
}

func (s *Store) Add(kind base.PieceKind, side base.Side, cell base.Cell) Handle {
	h := s.next
	s.next++
	s.entries = append(s.entries, entry{handle: h, piece: base.Piece{Kind: kind, Side: side, Cell: cell}})
	return h
}

// Reset drops every piece; handles are never reused.
func (s *Store) Reset() {
	s.entries = s.entries[:0]
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Get(h Handle) (base.Piece, bool) {
	for i := range s.entries {
		if s.entries[i].handle == h {
			return s.entries[i].piece, true
		}
	}
	return base.Piece{}, false
}

func (s *Store) SetHighlighted(h Handle, v bool) bool {
	for i := range s.entries {
		if s.entries[i].handle == h {
			s.entries[i].piece.Highlighted = v
			return true
		}
	}
	return false
}

// Each yields every piece with a pointer to its highlight flag, the only
// field callers may change.
func (s *Store) Each(fn func(h Handle, cell base.Cell, highlighted *bool)) {
	for i := range s.entries {
		fn(s.entries[i].handle, s.entries[i].piece.Cell, &s.entries[i].piece.Highlighted)
	}
}

// Pieces returns a copy of all pieces in scan order
func (s *Store) Pieces() []base.Piece {
	out := make([]base.Piece, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.piece)
	}
	return out
}

func (s *Store) Handles() []Handle {
	out := make([]Handle, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.handle)
	}
	return out
}

func (s *Store) Highlighted() []Handle {
	var out []Handle
	for _, e := range s.entries {
		if e.piece.Highlighted {
			out = append(out, e.handle)
		}
	}
	return out
}

// At returns the first piece standing on the cell
func (s *Store) At(c base.Cell) (Handle, base.Piece, bool) {
	for _, e := range s.entries {
		if e.piece.Cell == c {
			return e.handle, e.piece, true
		}
	}
	return 0, base.Piece{}, false
}
