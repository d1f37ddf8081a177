package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"obstaclelife/src/grid"
)

// front end modes
const (
	ModeConsole   = "C"
	ModeGraphical = "G"
	ModeTerminal  = "T"
)

// default options
const (
	DefRows         = 30
	DefCols         = 60
	DefCellSize     = 12
	DefDensity      = 0.25
	DefHistoryLimit = grid.DefHistoryLimit
)

// Unset marks an option to be asked for interactively
const Unset = -1

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrBadConfig   = errors.New("invalid configuration")
)

// Config represents the run configuration
type Config struct {
	Mode          string
	Rows          int
	Cols          int
	CellSize      int
	Interval      time.Duration // Unset asks for it
	MaxIterations int           // Unset asks for it, 0 means no limit
	SeedPath      string
	Template      string
	Random        bool
	HistoryLimit  int
	Colors        bool
}

var DefaultConfig = Config{
	Rows:          DefRows,
	Cols:          DefCols,
	CellSize:      DefCellSize,
	Interval:      Unset,
	MaxIterations: Unset,
	HistoryLimit:  DefHistoryLimit,
	Colors:        true,
}

// normalizeMode accepts the mode letter in any case
func normalizeMode(m string) (string, error) {
	switch s := strings.ToUpper(strings.TrimSpace(m)); s {
	case ModeConsole, ModeGraphical, ModeTerminal:
		return s, nil
	}
	return "", fmt.Errorf("%w %q, choose C, G or T", ErrUnknownMode, m)
}

// Validate checks the fully resolved configuration
func (c Config) Validate() error {
	if _, err := normalizeMode(c.Mode); err != nil {
		return err
	}
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimension %d x %d", ErrBadConfig, c.Rows, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrBadConfig, c.CellSize)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %v", ErrBadConfig, c.Interval)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations %d", ErrBadConfig, c.MaxIterations)
	case c.HistoryLimit < 0:
		return fmt.Errorf("%w: history limit %d", ErrBadConfig, c.HistoryLimit)
	}
	return nil
}
