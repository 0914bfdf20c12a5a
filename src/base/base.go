package base

import (
	"errors"
	"strings"
)

// Board size: 10 rows by 9 columns, (0,0) is bottom left from red's point of view
const (
	NumRows    int = 10
	NumColumns int = 9
)

var (
	ErrUnknownKind    = errors.New("unknown piece kind")
	ErrUnknownSide    = errors.New("unknown side")
	ErrCellOutOfRange = errors.New("cell out of range")
)

type Side uint8

const (
	Red Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

func SideFromString(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "black":
		return Black, nil
	default:
	}
	return Red, ErrUnknownSide
}

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Horse
	Cannon
	Elephant
	Scholar
	Chariot
	General
)

var AllKinds = []PieceKind{Pawn, Horse, Cannon, Elephant, Scholar, Chariot, General}

var kindNames = map[PieceKind]string{
	Pawn:     "pawn",
	Horse:    "horse",
	Cannon:   "cannon",
	Elephant: "elephant",
	Scholar:  "scholar",
	Chariot:  "chariot",
	General:  "general",
}

func (k PieceKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "invalid"
}

func KindFromString(s string) (PieceKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return Pawn, ErrUnknownKind
}

// Cell is a logical (row, column) coordinate on the board
type Cell struct {
	Row    int
	Column int
}

func IsValidCell(c Cell) bool {
	return c.Row >= 0 && c.Row < NumRows && c.Column >= 0 && c.Column < NumColumns
}

type Piece struct {
	Kind        PieceKind
	Side        Side
	Cell        Cell
	Highlighted bool
}

// ConvertRuneFromPiece returns the letter used by terminal drawing:
// upper case for red, lower case for black.
func ConvertRuneFromPiece(kind PieceKind, side Side) rune {
	var r rune
	switch kind {
	case Pawn:
		r = 'P'
	case Horse:
		r = 'H'
	case Cannon:
		r = 'C'
	case Elephant:
		r = 'E'
	case Scholar:
		r = 'S'
	case Chariot:
		r = 'R'
	case General:
		r = 'G'
	default:
		return '?'
	}
	if side == Black {
		r += 'a' - 'A'
	}
	return r
}

// Hanzi glyph of a piece, red and black use different characters for most kinds
func ConvertGlyphFromPiece(kind PieceKind, side Side) string {
	red := side == Red
	switch kind {
	case Pawn:
		if red {
			return "兵"
		}
		return "卒"
	case Horse:
		return "马"
	case Cannon:
		if red {
			return "炮"
		}
		return "砲"
	case Elephant:
		if red {
			return "相"
		}
		return "象"
	case Scholar:
		if red {
			return "仕"
		}
		return "士"
	case Chariot:
		return "车"
	case General:
		if red {
			return "帅"
		}
		return "将"
	default:
	}
	return "?"
}
