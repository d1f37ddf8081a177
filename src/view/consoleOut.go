package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
)

// ConsoleOut is the batch console front end
// it prints every generation until the grid is stable, the cap is reached or ctx is done
type ConsoleOut struct {
	out       io.Writer
	au        aurora.Aurora
	fillers   map[grid.Cell]string
	startTime time.Time
}

func NewConsoleOut(out io.Writer, colors bool) *ConsoleOut {
	au := aurora.NewAurora(colors)
	return &ConsoleOut{
		out:     out,
		au:      au,
		fillers: cellFillers(au),
	}
}

// cellFillers maps every cell state to its console symbol
func cellFillers(au aurora.Aurora) map[grid.Cell]string {
	return map[grid.Cell]string{
		grid.Alive:    au.Green("█").BgBrightGreen().String(),
		grid.Obstacle: au.Red("▓").String(),
		grid.Empty:    "░",
	}
}

func (c *ConsoleOut) Run(ctx context.Context, g *grid.Grid, delay time.Duration, maxIterations int) error {
	c.printConfiguration(g, delay, maxIterations)
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")

	iteration := 0
	for {
		c.printGrid(g, iteration)
		g.Update()
		iteration++
		if g.HasStableState() {
			c.finish(g, iteration, sim.StopStable)
			return nil
		}
		if maxIterations > 0 && iteration >= maxIterations {
			c.finish(g, iteration, sim.StopMaxIterations)
			return nil
		}
		if !wait(ctx, delay) {
			c.finish(g, iteration, sim.StopUser)
			return nil
		}
	}
}

// wait sleeps for delay, returns false when ctx is done first
func wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *ConsoleOut) printConfiguration(g *grid.Grid, delay time.Duration, maxIterations int) {
	limit := "unlimited"
	if maxIterations > 0 {
		limit = fmt.Sprintf("%v steps", maxIterations)
	}
	fmt.Fprintln(c.out, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", g.Rows(), g.Cols()),
		"Interval":       delay,
		"Max iterations": limit,
		"Live cells":     g.LiveCells(),
		"Obstacles":      g.Obstacles(),
	})
}

func (c *ConsoleOut) printGrid(g *grid.Grid, iteration int) {
	var b bytes.Buffer
	b.WriteString(c.au.Colorize(fmt.Sprintf("Iteration: %v", iteration), aurora.CyanFg).String())
	b.WriteByte('\n')
	for _, row := range g.Area().Entities {
		for _, e := range row {
			b.WriteString(c.fillers[e])
		}
		b.WriteByte('\n')
	}
	_, _ = c.out.Write(b.Bytes())
}

func (c *ConsoleOut) finish(g *grid.Grid, iteration int, reason sim.StopReason) {
	msg := c.au.Colorize(reason.String(), aurora.RedFg)
	if reason == sim.StopStable {
		msg = c.au.Colorize(reason.String(), aurora.GreenFg)
	}
	fmt.Fprintf(c.out, "\nFinished: %v\n", msg)
	c.printHashData(map[string]interface{}{
		"Last iteration": iteration,
		"Total time":     time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":     g.LiveCells(),
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
