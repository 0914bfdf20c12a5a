package gdraw

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"xiangqi/src/base"
	"xiangqi/src/camera"
	"xiangqi/src/geometry"
	"xiangqi/src/layout"
	"xiangqi/src/picking"
	"xiangqi/src/ui/gui/gbase"
	"xiangqi/src/ui/gui/ghelper"
	"xiangqi/src/ui/gui/ghelper/gclipboard"
	"xiangqi/src/ui/gui/ghelper/gdialog"
)

// GUIBoardDrawer shows the board and runs picking every tick
type GUIBoardDrawer struct {
	cam *camera.Ortho

	last    picking.Result
	lastRan bool
	status  string
}

func NewGUIBoardDrawer(ctx *ghelper.GUIGameContext) *GUIBoardDrawer {
	bd := &GUIBoardDrawer{}
	bd.recalcCamera(ctx)
	return bd
}

func (bd *GUIBoardDrawer) recalcCamera(ctx *ghelper.GUIGameContext) {
	g := ctx.Game.Geometry()
	if ctx.Config.FitBoard {
		bd.cam = camera.FitRect(g.Bounds(), gbase.BoardMargin, float64(ctx.ScreenW), float64(ctx.ScreenH))
	} else {
		bd.cam = camera.Standard2D(g.ArenaWidth, g.ArenaHeight)
	}
	ctx.Game.SetProjector(bd.cam)
}

func (bd *GUIBoardDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return SceneHelp, nil
	}
	bd.handleKeys(ctx)

	bd.recalcCamera(ctx)
	ctx.Pointer.Poll(ctx.ScreenW, ctx.ScreenH)
	bd.last, bd.lastRan = ctx.Game.Update(float64(ctx.ScreenW), float64(ctx.ScreenH))
	return SceneNotChanged, nil
}

func (bd *GUIBoardDrawer) handleKeys(ctx *ghelper.GUIGameContext) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ctx.Game.CreatePrototype()
		ctx.SaveSession()
		bd.status = "prototype layout"
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		ctx.Game.CreateCanonical()
		ctx.SaveSession()
		bd.status = "canonical layout"
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		res, err := gdialog.OpenLayout("Open layout")
		if err != nil {
			if !gdialog.IsCancelled(err) {
				ctx.Logx.Errorf("error open layout: %v", err)
				bd.status = "cannot open layout"
			}
			return
		}
		bd.loadLayout(ctx, res.Data, res.Name)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if gclipboard.Unsupported() {
			bd.status = "no clipboard"
			return
		}
		data, err := ctx.Game.LayoutYAML()
		if err == nil {
			err = gclipboard.WriteAll(string(data))
		}
		if err != nil {
			ctx.Logx.Errorf("error copy layout: %v", err)
			bd.status = "copy failed"
			return
		}
		bd.status = "layout copied"
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		if gclipboard.Unsupported() {
			bd.status = "no clipboard"
			return
		}
		s, err := gclipboard.ReadAll()
		if err != nil {
			ctx.Logx.Errorf("error paste layout: %v", err)
			bd.status = "paste failed"
			return
		}
		bd.loadLayout(ctx, []byte(s), "clipboard")
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		ctx.Config.Debug = !ctx.Config.Debug
		ctx.SaveConfig()
	}
}

func (bd *GUIBoardDrawer) loadLayout(ctx *ghelper.GUIGameContext, data []byte, from string) {
	l, err := layout.Parse(data)
	if err != nil {
		ctx.Logx.Errorf("error parse layout from %s: %v", from, err)
		bd.status = "bad layout: " + from
		return
	}
	ctx.Game.LoadLayout(l)
	ctx.SaveSession()
	bd.status = "loaded " + from
}

func (bd *GUIBoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	sw, sh := float64(ctx.ScreenW), float64(ctx.ScreenH)
	ppuX, ppuY := bd.cam.PixelsPerUnit(sw, sh)

	board, rect := ctx.AssetsWorker.Board()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(ppuX/gbase.BoardPPU, ppuY/gbase.BoardPPU)
	x, y := bd.cam.WorldToScreen(rect.MinX, rect.MaxY, sw, sh)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(board, op)

	g := ctx.Game.Geometry()
	face := ctx.AssetsWorker.Face()
	for _, p := range ctx.Game.Pieces() {
		wx, wy := g.CellCenter(p.Cell)
		cx, cy := bd.cam.WorldToScreen(wx, wy, sw, sh)

		img := ctx.AssetsWorker.Piece(p.Side)
		half := float64(img.Bounds().Dx()) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(ppuX/gbase.BoardPPU, ppuY/gbase.BoardPPU)
		op.GeoM.Translate(cx, cy)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)

		label := string(base.ConvertRuneFromPiece(p.Kind, p.Side))
		text.Draw(screen, label, face, int(cx)-3, int(cy)+5, ghelper.SideColor(p.Side, ctx.Theme))

		if p.Highlighted {
			r := float32(gbase.PieceRadius*ppuX) + 3
			vector.StrokeCircle(screen, float32(cx), float32(cy), r, 3, ctx.Theme.Accent, true)
		}
	}

	if bd.status != "" {
		text.Draw(screen, bd.status, face, 12, ctx.ScreenH-12, ctx.Theme.Text)
	}
	if ctx.Config.Debug {
		bd.drawDebug(ctx, screen)
	}
}

func (bd *GUIBoardDrawer) drawDebug(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	msg := "pointer: none"
	if bd.lastRan {
		msg = fmt.Sprintf("world: %.1f, %.1f  hits: %d", bd.last.WorldX, bd.last.WorldY, len(bd.last.Highlighted))
		sx, sy := bd.cam.WorldToScreen(bd.last.WorldX, bd.last.WorldY, float64(ctx.ScreenW), float64(ctx.ScreenH))
		ppu, _ := bd.cam.PixelsPerUnit(float64(ctx.ScreenW), float64(ctx.ScreenH))
		hb := float32(2 * geometry.HitboxHalfWidth * ppu)
		vector.StrokeRect(screen, float32(sx)-hb/2, float32(sy)-hb/2, hb, hb, 1, color.RGBA{0xff, 0x00, 0xff, 0xff}, false)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nTPS: %0.1f", msg, ebiten.ActualTPS()))
}
