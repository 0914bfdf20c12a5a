package gui

import (
	"bytes"

	"xiangqi/src"
	"xiangqi/src/logx"
	"xiangqi/src/ui/gui/gbase"
	"xiangqi/src/ui/gui/gbase/gconf"
	"xiangqi/src/ui/gui/gdraw"
	"xiangqi/src/ui/gui/ghelper"
	"xiangqi/src/ui/gui/ghelper/gsession"

	"github.com/hajimehoshi/ebiten/v2"
)

const appName string = "xiangqi"

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

// NewGUI builds the window state. When restore is set the last session
// layout replaces whatever the game was created with.
func NewGUI(gm *src.Game, cfg *gconf.Config, restore bool, logx logx.Logger) (*GUIProcessing, error) {
	s, err := gsession.Open(appName)
	if err != nil {
		// run without persistence
		logx.Warnf("%v", err)
	}
	if restore {
		restoreSession(gm, s, logx)
	}

	as := ghelper.NewGUIAssetsWorker(gm.Geometry(), gbase.PaletteFromString(cfg.Theme))
	ctx := ghelper.NewGUIGameContext(gm, as, s, cfg, logx)
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func restoreSession(gm *src.Game, s *gsession.Session, logx logx.Logger) {
	data, ok, err := s.LoadLayout()
	if err != nil {
		logx.Warnf("%v", err)
		return
	}
	if !ok {
		return
	}
	if err := gm.CreateFromLayout(bytes.NewReader(data)); err != nil {
		logx.Warnf("saved layout ignored: %v", err)
	}
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Xiangqi")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.ScreenW = outsideWidth
	gp.ctx.ScreenH = outsideHeight
	return outsideWidth, outsideHeight
}
