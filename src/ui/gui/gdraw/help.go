package gdraw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"xiangqi/src/ui/gui/ghelper"
)

var helpLines = []string{
	"move the mouse over a piece to highlight it",
	"",
	"R  prototype layout (one red chariot)",
	"N  canonical layout (one piece per kind and side)",
	"O  open layout file",
	"C  copy layout to clipboard",
	"V  paste layout from clipboard",
	"D  toggle debug overlay",
	"H  help, Esc quit",
}

type GUIHelpDrawer struct{}

func NewGUIHelpDrawer(ctx *ghelper.GUIGameContext) *GUIHelpDrawer {
	return &GUIHelpDrawer{}
}

func (hd *GUIHelpDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return SceneBoard, nil
	}
	return SceneNotChanged, nil
}

func (hd *GUIHelpDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	face := ctx.AssetsWorker.Face()
	y := 60
	for _, l := range helpLines {
		text.Draw(screen, l, face, 60, y, ctx.Theme.Text)
		y += 22
	}
}
