package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"xiangqi/src"
	"xiangqi/src/logx"
	clic "xiangqi/src/ui/cli"
	"xiangqi/src/ui/gui"
	"xiangqi/src/ui/gui/gbase"
	"xiangqi/src/ui/gui/gbase/gconf"
)

const logfile string = "xiangqi.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	return logx.NewLogx(file, logx.Options{
		Level:   logx.GetLoggerLevelByString(c.String("level")),
		Dev:     c.Bool("dev"),
		Console: c.Bool("console"),
	})
}

// newGame creates the game from --layout, --canonical or the prototype start
func newGame(c *cli.Command, cfg *gconf.Config, logger logx.Logger) (*src.Game, error) {
	gm := src.NewGame(cfg.Geometry(), logger)
	if path := c.String("layout"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error open layout: %w", err)
		}
		defer file.Close()
		if err := gm.CreateFromLayout(file); err != nil {
			return nil, err
		}
		return gm, nil
	}
	if c.Bool("canonical") {
		gm.CreateCanonical()
	} else {
		gm.CreatePrototype()
	}
	return gm, nil
}

func withLogger(c *cli.Command, fn func(logger *logx.Logx) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck
	return fn(logger)
}

func RunGUI(c *cli.Command) error {
	return withLogger(c, func(logger *logx.Logx) error {
		cfg, err := gconf.NewGUIConfig(c.String("config"))
		if err != nil {
			logger.Errorf("error read config: %v", err)
			return fmt.Errorf("error read config: %w", err)
		}
		gm, err := newGame(c, cfg, logger.Named("game"))
		if err != nil {
			return err
		}
		// an explicit start layout wins over the saved session
		restore := c.String("layout") == "" && !c.Bool("canonical")
		g, err := gui.NewGUI(gm, cfg, restore, logger.Named("gui"))
		if err != nil {
			logger.Errorf("error init GUI: %v", err)
			return fmt.Errorf("error init GUI: %v", err)
		}
		return g.Run()
	})
}

func RunXiangqi() error {
	lyf := &cli.StringFlag{
		Name:  "layout",
		Usage: "path to YAML layout file",
	}
	canf := &cli.BoolFlag{
		Name:  "canonical",
		Usage: "start with one piece per kind and side",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to YAML config",
		Value: gconf.DefaultFile,
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	xf := &cli.FloatFlag{
		Name:     "x",
		Usage:    "pointer x on the 800x600 virtual screen",
		Required: true,
	}
	yf := &cli.FloatFlag{
		Name:     "y",
		Usage:    "pointer y on the 800x600 virtual screen",
		Required: true,
	}
	// root flags are inherited by every subcommand
	commonff := []cli.Flag{lyf, canf, conff, df, lf, cf}

	guiAction := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			fmt.Printf("error GUI: %v\n", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "xiangqi",
		Usage: "xiangqi board with pointer picking",
		Flags: commonff,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board window",
				Action: guiAction,
			},
			{
				Name:  "cli",
				Usage: "terminal board, move the pointer with the keyboard",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withLogger(c, func(logger *logx.Logx) error {
						cfg, err := gconf.NewGUIConfig(c.String("config"))
						if err != nil {
							return fmt.Errorf("error read config: %w", err)
						}
						gm, err := newGame(c, cfg, logger.Named("game"))
						if err != nil {
							return err
						}
						clic.EnableANSI()
						if err := clic.NewCLI(gm, cfg.FitBoard).Run(); err != nil {
							fmt.Printf("error xiangqi: %v\n", err)
						}
						return nil
					})
				},
			},
			{
				Name:  "pick",
				Usage: "run one picking pass for a pointer position and print the result",
				Flags: []cli.Flag{xf, yf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withLogger(c, func(logger *logx.Logx) error {
						cfg, err := gconf.NewGUIConfig(c.String("config"))
						if err != nil {
							return fmt.Errorf("error read config: %w", err)
						}
						gm, err := newGame(c, cfg, logger.Named("game"))
						if err != nil {
							return err
						}
						cl := clic.NewCLI(gm, cfg.FitBoard)
						cl.SetOutput(os.Stdout, false)
						cl.Pointer().Set(c.Float("x"), c.Float("y"))
						cl.Tick()
						return nil
					})
				},
			},
		},
		Action: guiAction,
	}).Run(context.Background(), os.Args)
}
