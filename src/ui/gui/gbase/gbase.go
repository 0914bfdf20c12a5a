package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 800

	// world margin kept around the outer cells when the camera fits the board
	BoardMargin float64 = 60
	// piece disc radius in world units, a little under the hit box
	PieceRadius float64 = 27
	// board image resolution, pixels per world unit
	BoardPPU float64 = 2
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg         color.RGBA
	Board      color.RGBA
	River      color.RGBA
	Line       color.RGBA
	RedPiece   color.RGBA
	BlackPiece color.RGBA
	PieceFill  color.RGBA
	Accent     color.RGBA
	Text       color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:         color.RGBA{0x57, 0x5c, 0x85, 0xff},
	Board:      color.RGBA{0xe8, 0xc9, 0x8f, 0xff},
	River:      color.RGBA{0xd9, 0xb5, 0x73, 0xff},
	Line:       color.RGBA{0x4a, 0x2f, 0x14, 0xff},
	RedPiece:   color.RGBA{0xc0, 0x1a, 0x1a, 0xff},
	BlackPiece: color.RGBA{0x1c, 0x1c, 0x1c, 0xff},
	PieceFill:  color.RGBA{0xf6, 0xe7, 0xc8, 0xff},
	Accent:     color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Text:       color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
}

var DarkPalette = Palette{
	Bg:         color.RGBA{0x12, 0x12, 0x12, 0xff},
	Board:      color.RGBA{0x5a, 0x43, 0x2a, 0xff},
	River:      color.RGBA{0x4a, 0x36, 0x20, 0xff},
	Line:       color.RGBA{0xdd, 0xcc, 0xaa, 0xff},
	RedPiece:   color.RGBA{0xe0, 0x40, 0x40, 0xff},
	BlackPiece: color.RGBA{0xee, 0xee, 0xee, 0xff},
	PieceFill:  color.RGBA{0x30, 0x28, 0x20, 0xff},
	Accent:     color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Text:       color.RGBA{0xee, 0xee, 0xee, 0xff},
}
