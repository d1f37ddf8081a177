package sim

import (
	"context"
	"time"

	"obstaclelife/src/grid"
)

// Simulator is any front end able to drive the grid
// Run blocks until the simulation ends: stability, the iteration cap, the user or ctx
// maxIterations 0 means no cap
type Simulator interface {
	Run(ctx context.Context, g *grid.Grid, delay time.Duration, maxIterations int) error
}

// RunningState is the controller mode at the concrete moment
type RunningState int

const (
	Paused RunningState = iota
	Running
)

func (s RunningState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// StopReason tells why the last run ended
type StopReason int

const (
	StopNone StopReason = iota
	StopUser
	StopStable
	StopMaxIterations
)

func (r StopReason) String() string {
	switch r {
	case StopUser:
		return "stopped"
	case StopStable:
		return "stable state reached"
	case StopMaxIterations:
		return "iteration limit reached"
	}
	return ""
}

// Status represents the status of the simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	StopReason    StopReason
	Edit          grid.Cell
	LiveCells     int
	Obstacles     int
	HistoryDepth  int
	MaxIterations int
}
