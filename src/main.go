package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"obstaclelife/src/game"
	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
	"obstaclelife/src/view"
	"obstaclelife/src/view/window"
)

var (
	drivers = map[string]game.Factory{
		game.ModeConsole: func(cfg game.Config) sim.Simulator {
			return view.NewConsoleOut(os.Stdout, cfg.Colors)
		},
		game.ModeTerminal: func(cfg game.Config) sim.Simulator {
			return view.NewConsoleUI(cfg.Colors)
		},
		game.ModeGraphical: func(cfg game.Config) sim.Simulator {
			return window.New("Game of Life with obstacles", cfg.CellSize)
		},
	}
)

func main() {
	log.SetFlags(0)
	cfg := initOptions()

	cfg, err := game.Resolve(cfg, game.NewPrompter(os.Stdin, os.Stdout))
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := game.Run(ctx, cfg, drivers, rng); err != nil {
		stop()
		log.Fatalln(err)
	}
}

func initOptions() game.Config {
	cfg := game.DefaultConfig
	modes := make([]string, 0, len(drivers))
	for k := range drivers {
		modes = append(modes, k)
	}
	sort.Strings(modes)
	noColor := false

	flaggy.SetName("obstaclelife")
	flaggy.SetDescription("Game of Life with obstacle cells and undo")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&cfg.Mode, "m", "mode", "Front end ["+strings.Join(modes, "|")+"], asked when empty")
	flaggy.Int(&cfg.Cols, "x", "cols", "Width of the field in cells")
	flaggy.Int(&cfg.Rows, "y", "rows", "Height of the field in cells")
	flaggy.Int(&cfg.CellSize, "c", "cellSize", "Cell size in pixels for the graphical mode")
	flaggy.Duration(&cfg.Interval, "i", "interval", "Delay between the steps, for example 150ms, asked when not set")
	flaggy.Int(&cfg.MaxIterations, "s", "maxSteps", "Limit the simulation to maxSteps, 0 for no limit, asked when not set")
	flaggy.String(&cfg.SeedPath, "f", "seed", "Seed file with 1 (alive), X (obstacle) and 0 (empty) tokens")
	flaggy.String(&cfg.Template, "t", "template", "Settle a template ["+strings.Join(grid.Templates(), "|")+"]")
	flaggy.Bool(&cfg.Random, "r", "random", "Settle with random data")
	flaggy.Int(&cfg.HistoryLimit, "l", "history", "Undo history limit, 0 for no limit")
	flaggy.Bool(&noColor, "", "no-color", "Disable console colors")

	flaggy.Parse()
	cfg.Colors = !noColor

	if cfg.Template != "" {
		if _, ok := grid.LookupTemplate(cfg.Template); !ok {
			flaggy.ShowHelpAndExit("unknown template")
		}
	}
	return cfg
}
