package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
)

type fakeSimulator struct {
	g             *grid.Grid
	delay         time.Duration
	maxIterations int
}

func (f *fakeSimulator) Run(_ context.Context, g *grid.Grid, delay time.Duration, maxIterations int) error {
	f.g, f.delay, f.maxIterations = g, delay, maxIterations
	return nil
}

func newConfig() Config {
	cfg := DefaultConfig
	cfg.Rows, cfg.Cols = 4, 5
	return cfg
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(Config) Config
		input   string
		want    func(Config) Config
		asked   []string
		wantErr error
	}{
		{
			name:  "graphical asks delay and cap",
			cfg:   func(c Config) Config { return c },
			input: "g\n150\n40\n",
			want: func(c Config) Config {
				c.Mode, c.Interval, c.MaxIterations = ModeGraphical, 150*time.Millisecond, 40
				return c
			},
			asked: []string{"Select mode", "Delay", "Maximum iterations"},
		},
		{
			name:  "console asks seed file",
			cfg:   func(c Config) Config { return c },
			input: "C\n0\nseed.txt",
			want: func(c Config) Config {
				c.Mode, c.Interval, c.MaxIterations, c.SeedPath = ModeConsole, 0, 0, "seed.txt"
				return c
			},
			asked: []string{"Select mode", "Delay", "Seed file"},
		},
		{
			name: "flags skip the prompts",
			cfg: func(c Config) Config {
				c.Mode, c.Interval, c.MaxIterations = "t", time.Second, 7
				return c
			},
			want: func(c Config) Config {
				c.Mode, c.Interval, c.MaxIterations = ModeTerminal, time.Second, 7
				return c
			},
		},
		{
			name: "console with a template needs no seed file",
			cfg: func(c Config) Config {
				c.Mode, c.Template = "C", "glider"
				return c
			},
			input: "10\n",
			want: func(c Config) Config {
				c.Mode, c.Template, c.Interval, c.MaxIterations = ModeConsole, "glider", 10*time.Millisecond, 0
				return c
			},
			asked: []string{"Delay"},
		},
		{
			name:    "unknown mode",
			cfg:     func(c Config) Config { return c },
			input:   "Q\n",
			wantErr: ErrUnknownMode,
		},
		{
			name:    "bad delay",
			cfg:     func(c Config) Config { return c },
			input:   "G\nfast\n",
			wantErr: ErrBadConfig,
		},
		{
			name:    "console with an empty seed answer",
			cfg:     func(c Config) Config { return c },
			input:   "C\n0\n\n",
			wantErr: grid.ErrFile,
		},
		{
			name:    "no answer",
			cfg:     func(c Config) Config { return c },
			input:   "",
			wantErr: io.EOF,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Resolve(tt.cfg(newConfig()), NewPrompter(strings.NewReader(tt.input), &out))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if want := tt.want(newConfig()); got != want {
				t.Fatalf("config = %+v, want %+v", got, want)
			}
			for _, q := range tt.asked {
				if !strings.Contains(out.String(), q) {
					t.Errorf("prompt %q not shown in %q", q, out.String())
				}
			}
			if tt.asked == nil && out.Len() != 0 {
				t.Errorf("unexpected prompts: %q", out.String())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := newConfig()
	cfg.Mode, cfg.Interval, cfg.MaxIterations = ModeConsole, 0, 0
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := cfg
	bad.Rows = 0
	if err := bad.Validate(); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("err = %v, want ErrBadConfig", err)
	}
	bad = cfg
	bad.CellSize = -3
	if err := bad.Validate(); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("err = %v, want ErrBadConfig", err)
	}
}

func TestNewGrid_Seeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("1 1 1 0 X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := newConfig()
	cfg.SeedPath = path
	g, err := NewGrid(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if g.LiveCells() != 3 || g.At(0, 4) != grid.Obstacle {
		t.Fatalf("seeded grid: live %d, obstacle %v", g.LiveCells(), g.At(0, 4))
	}

	cfg = newConfig()
	cfg.Template = "block"
	g, err = NewGrid(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if g.LiveCells() != 4 || g.At(1, 1) != grid.Alive || g.At(2, 2) != grid.Alive {
		t.Fatalf("block not centred, live %d", g.LiveCells())
	}
}

func TestNewGrid_Errors(t *testing.T) {
	cfg := newConfig()
	cfg.SeedPath = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := NewGrid(cfg, nil); !errors.Is(err, grid.ErrFile) {
		t.Fatalf("err = %v, want grid.ErrFile", err)
	}

	cfg = newConfig()
	cfg.Template = "nope"
	if _, err := NewGrid(cfg, nil); !errors.Is(err, grid.ErrUnknownTemplate) {
		t.Fatalf("err = %v, want grid.ErrUnknownTemplate", err)
	}
}

func TestRun(t *testing.T) {
	fake := &fakeSimulator{}
	drivers := map[string]Factory{
		ModeConsole: func(Config) sim.Simulator { return fake },
	}
	cfg := newConfig()
	cfg.Mode, cfg.Interval, cfg.MaxIterations = ModeConsole, 5*time.Millisecond, 9
	if err := Run(context.Background(), cfg, drivers, nil); err != nil {
		t.Fatal(err)
	}
	if fake.g == nil || fake.g.Rows() != 4 || fake.g.Cols() != 5 {
		t.Fatal("driver did not receive the grid")
	}
	if fake.delay != 5*time.Millisecond || fake.maxIterations != 9 {
		t.Fatalf("driver got delay %v, cap %d", fake.delay, fake.maxIterations)
	}

	cfg.Mode = ModeGraphical
	if err := Run(context.Background(), cfg, drivers, nil); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}
