package ghelper

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"xiangqi/src/base"
	"xiangqi/src/geometry"
	"xiangqi/src/ui/gui/gbase"
)

type GUIAssetsWorker struct {
	board       *ebiten.Image
	boardRect   geometry.Rect
	pieceImages map[base.Side]*ebiten.Image
	face        font.Face
}

// NewGUIAssetsWorker renders everything up front, nothing is read from disk
func NewGUIAssetsWorker(g geometry.Geometry, theme gbase.Palette) *GUIAssetsWorker {
	board, rect := RenderBoard(g, theme, gbase.BoardPPU)
	r := gbase.PieceRadius * gbase.BoardPPU
	return &GUIAssetsWorker{
		board:     board,
		boardRect: rect,
		pieceImages: map[base.Side]*ebiten.Image{
			base.Red:   RenderPiece(base.Red, theme, r),
			base.Black: RenderPiece(base.Black, theme, r),
		},
		face: basicfont.Face7x13,
	}
}

// Board returns the board image and the world rect it covers
func (aw *GUIAssetsWorker) Board() (*ebiten.Image, geometry.Rect) {
	return aw.board, aw.boardRect
}

func (aw *GUIAssetsWorker) Piece(side base.Side) *ebiten.Image {
	return aw.pieceImages[side]
}

func (aw *GUIAssetsWorker) Face() font.Face {
	return aw.face
}
