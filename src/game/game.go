package game

import (
	"context"
	"fmt"
	"math/rand"

	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
)

// Factory creates the front end for a mode
type Factory func(cfg Config) sim.Simulator

// NewGrid creates the grid and seeds it from the file, the template and random data in that order
func NewGrid(cfg Config, rng *rand.Rand) (*grid.Grid, error) {
	g := grid.New(cfg.Rows, cfg.Cols, cfg.HistoryLimit)
	if cfg.SeedPath != "" {
		if err := g.InitializeFromInput(cfg.SeedPath); err != nil {
			return nil, err
		}
	}
	if cfg.Template != "" {
		t, ok := grid.LookupTemplate(cfg.Template)
		if !ok {
			return nil, fmt.Errorf("%w %q, known: %v", grid.ErrUnknownTemplate, cfg.Template, grid.Templates())
		}
		h, w := templateSize(t)
		g.Settle(t.Coordinates, max0((cfg.Rows-h)/2), max0((cfg.Cols-w)/2))
	}
	if cfg.Random {
		g.SettleRandom(rng, DefDensity)
	}
	return g, nil
}

// Run builds the grid and hands it to the front end selected by cfg.Mode
func Run(ctx context.Context, cfg Config, drivers map[string]Factory, rng *rand.Rand) error {
	f, ok := drivers[cfg.Mode]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownMode, cfg.Mode)
	}
	g, err := NewGrid(cfg, rng)
	if err != nil {
		return err
	}
	return f(cfg).Run(ctx, g, cfg.Interval, cfg.MaxIterations)
}

func templateSize(t grid.Template) (rows int, cols int) {
	for _, v := range t.Coordinates {
		if len(v) < 2 {
			continue
		}
		if v[0]+1 > rows {
			rows = v[0] + 1
		}
		if v[1]+1 > cols {
			cols = v[1] + 1
		}
	}
	return
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
