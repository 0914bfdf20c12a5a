package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"xiangqi/src"
	"xiangqi/src/camera"
	"xiangqi/src/ui/gui/gbase"
)

// virtual screen the terminal pointer lives on, same size as the arena
const (
	ScreenW float64 = 800
	ScreenH float64 = 600
	// pointer step in screen pixels
	step float64 = 15
)

type CLIProcessing struct {
	game    *src.Game
	pointer *VirtualPointer
	cam     *camera.Ortho
	in      *os.File
	out     io.Writer
	color   bool
}

// NewCLI wires a virtual pointer and camera into the game. With fitBoard the
// camera frames every cell, otherwise it shows the fixed arena and the rows
// past the arena edge cannot be reached.
func NewCLI(gm *src.Game, fitBoard bool) *CLIProcessing {
	p := NewVirtualPointer(ScreenW, ScreenH)
	g := gm.Geometry()
	var cam *camera.Ortho
	if fitBoard {
		cam = camera.FitRect(g.Bounds(), gbase.BoardMargin, ScreenW, ScreenH)
	} else {
		cam = camera.Standard2D(g.ArenaWidth, g.ArenaHeight)
	}
	gm.SetPointer(p)
	gm.SetProjector(cam)
	return &CLIProcessing{game: gm, pointer: p, cam: cam, in: os.Stdin, out: os.Stdout, color: true}
}

func (c *CLIProcessing) Camera() *camera.Ortho {
	return c.cam
}

// Pointer gives direct access for one-shot picks
func (c *CLIProcessing) Pointer() *VirtualPointer {
	return c.pointer
}

func (c *CLIProcessing) SetOutput(w io.Writer, color bool) {
	c.out = w
	c.color = color
}

// Tick runs one picking pass and redraws the board
func (c *CLIProcessing) Tick() {
	res, ran := c.game.Update(ScreenW, ScreenH)
	pieces := c.game.Pieces()
	PrintBoard(c.out, pieces, c.color)
	x, y, ok := c.pointer.CursorPosition()
	PrintPick(c.out, x, y, ok, res, ran, pieces)
}

// raw processing
// - arrows or hjkl move the pointer
// - space hides the pointer
// - r / n reload prototype / canonical layout
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	c.redraw()
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 3, 'q': // Ctrl+C
			fmt.Fprint(c.out, "\r\n")
			return nil
		case 0x1b: // escape sequence, possibly an arrow
			b1, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			switch b2 {
			case 'A':
				c.pointer.Move(0, -step)
			case 'B':
				c.pointer.Move(0, step)
			case 'C':
				c.pointer.Move(step, 0)
			case 'D':
				c.pointer.Move(-step, 0)
			}
		case 'k':
			c.pointer.Move(0, -step)
		case 'j':
			c.pointer.Move(0, step)
		case 'l':
			c.pointer.Move(step, 0)
		case 'h':
			c.pointer.Move(-step, 0)
		case ' ':
			c.pointer.Hide()
		case 'r':
			c.game.CreatePrototype()
		case 'n':
			c.game.CreateCanonical()
		default:
			continue
		}
		c.redraw()
	}
}

func (c *CLIProcessing) redraw() {
	// clear screen, raw mode needs explicit carriage returns
	fmt.Fprint(c.out, "\033[H\033[2J")
	var sb strings.Builder
	out := c.out
	c.out = &sb
	c.Tick()
	c.out = out
	fmt.Fprint(c.out, strings.ReplaceAll(sb.String(), "\n", "\r\n"))
	fmt.Fprint(c.out, "arrows/hjkl move, space hide pointer, r/n layouts, q quit\r\n")
}

// line processing, one command per line:
// "<x> <y>" puts the pointer on the virtual screen, "none" hides it,
// "q" quits
func (c *CLIProcessing) RunLineMode() error {
	return c.runLines(c.in)
}

func (c *CLIProcessing) runLines(in io.Reader) error {
	sc := bufio.NewScanner(in)
	c.Tick()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "none":
			c.pointer.Hide()
		default:
			x, y, err := parsePoint(line)
			if err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
				continue
			}
			c.pointer.Set(x, y)
		}
		c.Tick()
	}
	return sc.Err()
}

func parsePoint(s string) (float64, float64, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("want \"<x> <y>\", got %q", s)
	}
	x, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %v", err)
	}
	y, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %v", err)
	}
	return x, y, nil
}
