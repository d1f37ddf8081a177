package sim

import "obstaclelife/src/grid"

// editCycle is the order CycleEdit walks the edit states
var editCycle = []grid.Cell{grid.Alive, grid.Empty, grid.Obstacle}

// Control is one of the clickable controls of an interactive front end
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlStop
	ControlUndo
)

func (c Control) String() string {
	switch c {
	case ControlStart:
		return "Start"
	case ControlStop:
		return "Stop"
	case ControlUndo:
		return "Undo"
	}
	return ""
}

// Controller is the run/pause state machine shared by the interactive front ends
// front ends translate their input events to the controller calls, it never touches any device
type Controller struct {
	g             *grid.Grid
	maxIterations int
	mode          RunningState
	iteration     int
	reason        StopReason
	edit          grid.Cell
}

// NewController creates a paused controller, the edit state starts as Alive
func NewController(g *grid.Grid, maxIterations int) *Controller {
	return &Controller{
		g:             g,
		maxIterations: maxIterations,
		edit:          grid.Alive,
	}
}

func (c *Controller) Grid() *grid.Grid {
	return c.g
}

func (c *Controller) Mode() RunningState {
	return c.mode
}

func (c *Controller) Iteration() int {
	return c.iteration
}

func (c *Controller) Edit() grid.Cell {
	return c.edit
}

// Status returns the current controller and grid status
func (c *Controller) Status() Status {
	return Status{
		IterationNum:  c.iteration,
		RunningMode:   c.mode,
		StopReason:    c.reason,
		Edit:          c.edit,
		LiveCells:     c.g.LiveCells(),
		Obstacles:     c.g.Obstacles(),
		HistoryDepth:  c.g.HistoryDepth(),
		MaxIterations: c.maxIterations,
	}
}

// Activate performs the action bound to the control
func (c *Controller) Activate(ctl Control) {
	switch ctl {
	case ControlStart:
		c.Start()
	case ControlStop:
		c.Stop()
	case ControlUndo:
		c.Undo()
	}
}

func (c *Controller) Start() {
	c.mode = Running
	c.reason = StopNone
}

func (c *Controller) Stop() {
	if c.mode == Running {
		c.reason = StopUser
	}
	c.mode = Paused
}

// Toggle switches between running and paused
func (c *Controller) Toggle() {
	if c.mode == Running {
		c.Stop()
	} else {
		c.Start()
	}
}

// Undo pauses the simulation and reverts the grid by one step
func (c *Controller) Undo() {
	c.Stop()
	if !c.g.Undo() {
		return
	}
	c.reason = StopNone
	if c.iteration > 0 {
		c.iteration--
	}
}

// Clear pauses the simulation, empties the grid and resets the step counter
func (c *Controller) Clear() {
	c.g.Clear()
	c.mode, c.reason, c.iteration = Paused, StopNone, 0
}

// Tick advances the grid by one generation when running
// returns true when the grid was updated
func (c *Controller) Tick() bool {
	if c.mode != Running {
		return false
	}
	c.advance()
	return true
}

// Step advances the grid by one generation when paused
func (c *Controller) Step() bool {
	if c.mode != Paused {
		return false
	}
	c.advance()
	return true
}

func (c *Controller) advance() {
	c.g.Update()
	c.iteration++
	switch {
	case c.g.HasStableState():
		c.mode, c.reason = Paused, StopStable
	case c.maxIterations > 0 && c.iteration >= c.maxIterations:
		c.mode, c.reason = Paused, StopMaxIterations
	}
}

// Click sets the cell under the pointer to the selected edit state
func (c *Controller) Click(pixelX int, pixelY int, cellSize int) {
	c.g.ToggleCell(pixelX, pixelY, cellSize, c.edit)
}

// PaintObstacle places an obstacle under the pointer whatever the edit state is
func (c *Controller) PaintObstacle(pixelX int, pixelY int, cellSize int) {
	c.g.ToggleCell(pixelX, pixelY, cellSize, grid.Obstacle)
}

// Erase removes the obstacle under the pointer
func (c *Controller) Erase(pixelX int, pixelY int, cellSize int) {
	c.g.EraseObstacle(pixelX, pixelY, cellSize)
}

// CycleEdit selects the next edit state: alive, empty, obstacle
func (c *Controller) CycleEdit() grid.Cell {
	for i, e := range editCycle {
		if e == c.edit {
			c.edit = editCycle[(i+1)%len(editCycle)]
			return c.edit
		}
	}
	c.edit = editCycle[0]
	return c.edit
}

// SelectEdit sets the edit state directly
func (c *Controller) SelectEdit(e grid.Cell) {
	c.edit = e
}
