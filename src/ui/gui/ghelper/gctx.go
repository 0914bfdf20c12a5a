package ghelper

import (
	"xiangqi/src"
	"xiangqi/src/logx"
	"xiangqi/src/ui/gui/gbase"
	"xiangqi/src/ui/gui/gbase/gconf"
	"xiangqi/src/ui/gui/ghelper/gsession"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game         *src.Game
	AssetsWorker *GUIAssetsWorker
	Pointer      *CursorPointer
	Session      *gsession.Session
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger

	// logical screen size from the last Layout call
	ScreenW, ScreenH int
}

func NewGUIGameContext(gm *src.Game, a *GUIAssetsWorker, s *gsession.Session, c *gconf.Config, l logx.Logger) *GUIGameContext {
	p := NewCursorPointer()
	gm.SetPointer(p)
	return &GUIGameContext{
		Game:         gm,
		AssetsWorker: a,
		Pointer:      p,
		Session:      s,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
		ScreenW:      c.WindowW,
		ScreenH:      c.WindowH,
	}
}

// SaveSession stores the current layout, failures are only logged
func (ctx *GUIGameContext) SaveSession() {
	data, err := ctx.Game.LayoutYAML()
	if err != nil {
		ctx.Logx.Errorf("error encode layout: %v", err)
		return
	}
	if err := ctx.Session.SaveLayout(data); err != nil {
		ctx.Logx.Warnf("%v", err)
	}
}

// SaveConfig writes the config back to its file, failures are only logged
func (ctx *GUIGameContext) SaveConfig() {
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("%v", err)
	}
}
