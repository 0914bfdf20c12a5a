package cli

import (
	"fmt"
	"io"

	"xiangqi/src/base"
	"xiangqi/src/picking"
)

// ANSI-code
const (
	reset   = "\033[0m"
	boardBg = "\033[43m"
	hoverBg = "\033[46m"
	redF    = "\033[31m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

// PrintBoard draws the board with red at the bottom. Highlighted pieces get
// a cyan background. With color off only letters are printed and hovered
// pieces are wrapped in brackets. A cell holding more than one piece shows
// the first one followed by '*'.
func PrintBoard(w io.Writer, pieces []base.Piece, color bool) {
	var grid [base.NumRows][base.NumColumns][]*base.Piece
	for i := range pieces {
		c := pieces[i].Cell
		if !base.IsValidCell(c) {
			continue
		}
		grid[c.Row][c.Column] = append(grid[c.Row][c.Column], &pieces[i])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "    0  1  2  3  4  5  6  7  8")
	for r := base.NumRows - 1; r >= 0; r-- {
		fmt.Fprintf(w, "%d  ", r)
		for c := 0; c < base.NumColumns; c++ {
			fmt.Fprint(w, cellString(grid[r][c], color))
		}
		fmt.Fprintf(w, "  %d\n", r)
		if r == 5 {
			fmt.Fprintln(w, "   ~~~~~~~~~~~~~~~~~~~~~~~~~~~")
		}
	}
	fmt.Fprintln(w, "    0  1  2  3  4  5  6  7  8")
	fmt.Fprintln(w)
}

func cellString(stack []*base.Piece, color bool) string {
	if len(stack) == 0 {
		if color {
			return boardBg + dimF + " + " + reset
		}
		return " + "
	}
	p := stack[0]
	hovered := false
	for _, q := range stack {
		hovered = hovered || q.Highlighted
	}
	r := string(base.ConvertRuneFromPiece(p.Kind, p.Side))
	tail := " "
	if len(stack) > 1 {
		tail = "*"
	}
	if !color {
		if hovered {
			if tail == " " {
				tail = "]"
			}
			return "[" + r + tail
		}
		return " " + r + tail
	}
	bg := boardBg
	if hovered {
		bg = hoverBg
	}
	fg := blackF
	if p.Side == base.Red {
		fg = redF
	}
	return bg + fg + " " + r + tail + reset
}

// PrintPick describes the outcome of one picking pass
func PrintPick(w io.Writer, x, y float64, hasPointer bool, res picking.Result, ran bool, pieces []base.Piece) {
	switch {
	case !hasPointer:
		fmt.Fprintln(w, "pointer: none, pass skipped")
		return
	case !ran:
		fmt.Fprintf(w, "pointer: (%.0f, %.0f), no board point, pass skipped\n", x, y)
		return
	}
	fmt.Fprintf(w, "pointer: (%.0f, %.0f) world: (%.1f, %.1f)\n", x, y, res.WorldX, res.WorldY)
	hits := 0
	for _, p := range pieces {
		if p.Highlighted {
			hits++
			fmt.Fprintf(w, "  hover: %v %v %s at (%d,%d)\n", p.Side, p.Kind,
				base.ConvertGlyphFromPiece(p.Kind, p.Side), p.Cell.Row, p.Cell.Column)
		}
	}
	if hits == 0 {
		fmt.Fprintln(w, "  hover: nothing")
	}
}
