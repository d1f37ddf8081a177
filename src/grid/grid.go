package grid

import (
	"math/rand"
)

// Cell is the state of one grid position
type Cell uint8

const (
	Empty Cell = iota
	Alive
	Obstacle
)

var cellNames = map[Cell]string{
	Empty:    "empty",
	Alive:    "alive",
	Obstacle: "obstacle",
}

func (c Cell) String() string {
	if n, ok := cellNames[c]; ok {
		return n
	}
	return "unknown"
}

// Area is a rows x cols matrix of cells
type Area struct {
	Rows     int
	Cols     int
	Entities [][]Cell
}

// Grid is the automaton field with its undo history
// it is not safe for concurrent use, the owning driver mutates it from one goroutine
type Grid struct {
	area    Area
	history *History
}

// New creates an empty grid rows x cols
// historyLimit caps the undo history, 0 keeps it unbounded
func New(rows int, cols int, historyLimit int) *Grid {
	return &Grid{
		area:    createArea(rows, cols),
		history: NewHistory(historyLimit),
	}
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.area.Rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.area.Cols
}

// At returns the cell at row, col; positions outside the grid are Empty
func (g *Grid) At(row int, col int) Cell {
	if !g.inside(row, col) {
		return Empty
	}
	return g.area.Entities[row][col]
}

// Set writes the cell at row, col without any edit rules
func (g *Grid) Set(row int, col int, c Cell) {
	if !g.inside(row, col) {
		return
	}
	g.area.Entities[row][col] = c
}

// Area returns the current cells, the caller must not modify them
func (g *Grid) Area() Area {
	return g.area
}

// Snapshot returns a deep copy of the current cells
func (g *Grid) Snapshot() Area {
	return g.area.clone()
}

// HistoryDepth returns the number of snapshots available for Undo
func (g *Grid) HistoryDepth() int {
	return g.history.Len()
}

// LiveCells counts the alive cells
func (g *Grid) LiveCells() int {
	return g.count(Alive)
}

// Obstacles counts the obstacle cells
func (g *Grid) Obstacles() int {
	return g.count(Obstacle)
}

// Equal reports whether both grids hold the same cells
func (g *Grid) Equal(o *Grid) bool {
	return g.area.equal(o.area)
}

// Update pushes the current state to the history and computes the next generation
// the new generation is built in a separate buffer from the pre-update state and then replaces it
func (g *Grid) Update() {
	g.history.Push(g.area)
	next := createArea(g.area.Rows, g.area.Cols)
	g.walkArea(func(row int, col int, c Cell) {
		next.Entities[row][col] = g.cellNextState(row, col)
	})
	g.area = next
}

// Undo restores the state before the most recent Update
// returns false when there is nothing to restore
func (g *Grid) Undo() bool {
	a, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.area = a
	return true
}

// HasStableState reports whether the last Update produced no change
func (g *Grid) HasStableState() bool {
	prev, ok := g.history.Peek()
	if !ok {
		return false
	}
	return g.area.equal(prev)
}

// ToggleCell sets the cell under pixel x, y to the state
// obstacles are overwritten only by Obstacle, use EraseObstacle to remove them
func (g *Grid) ToggleCell(pixelX int, pixelY int, cellSize int, state Cell) {
	row, col, ok := g.cellAt(pixelX, pixelY, cellSize)
	if !ok {
		return
	}
	if state != Obstacle && g.area.Entities[row][col] == Obstacle {
		return
	}
	g.area.Entities[row][col] = state
}

// EraseObstacle turns the obstacle under pixel x, y back to Empty
func (g *Grid) EraseObstacle(pixelX int, pixelY int, cellSize int) {
	row, col, ok := g.cellAt(pixelX, pixelY, cellSize)
	if !ok {
		return
	}
	if g.area.Entities[row][col] == Obstacle {
		g.area.Entities[row][col] = Empty
	}
}

// Clear empties every cell and drops the history
func (g *Grid) Clear() {
	g.area = createArea(g.area.Rows, g.area.Cols)
	g.history.Reset()
}

// SettleRandom makes random cells alive, density is the share of the grid to hit
func (g *Grid) SettleRandom(rng *rand.Rand, density float64) {
	n := int(float64(g.area.Rows*g.area.Cols) * density)
	for i := 0; i < n; i++ {
		row, col := rng.Intn(g.area.Rows), rng.Intn(g.area.Cols)
		if g.area.Entities[row][col] != Obstacle {
			g.area.Entities[row][col] = Alive
		}
	}
	g.history.Reset()
}

// cellAt maps a pixel to a cell position
func (g *Grid) cellAt(pixelX int, pixelY int, cellSize int) (row int, col int, ok bool) {
	if cellSize <= 0 || pixelX < 0 || pixelY < 0 {
		return 0, 0, false
	}
	row, col = pixelY/cellSize, pixelX/cellSize
	return row, col, g.inside(row, col)
}

func (g *Grid) inside(row int, col int) bool {
	return row >= 0 && col >= 0 && row < g.area.Rows && col < g.area.Cols
}

func (g *Grid) count(c Cell) int {
	n := 0
	g.walkArea(func(_ int, _ int, e Cell) {
		if e == c {
			n++
		}
	})
	return n
}

// walkArea walks the entire area and calls cb for each cell
func (g *Grid) walkArea(cb func(row int, col int, c Cell)) {
	for row := range g.area.Entities {
		for col := range g.area.Entities[row] {
			cb(row, col, g.area.Entities[row][col])
		}
	}
}

// cellNextState calculates the next state for the cell
// neighbours wrap around the edges, only alive neighbours are counted
func (g *Grid) cellNextState(row int, col int) Cell {
	a := g.area
	c := a.Entities[row][col]
	if c == Obstacle {
		return Obstacle
	}
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			// skip my position
			if i == 0 && j == 0 {
				continue
			}
			nr := (row + i + a.Rows) % a.Rows
			nc := (col + j + a.Cols) % a.Cols
			if a.Entities[nr][nc] == Alive {
				liveNeighbours++
			}
		}
	}

	switch {
	case c == Alive && (liveNeighbours == 2 || liveNeighbours == 3):
		return Alive
	case c == Empty && liveNeighbours == 3:
		return Alive
	}
	return Empty
}

// createArea allocates a new area backed by one slice
func createArea(rows int, cols int) Area {
	area := Area{Rows: rows, Cols: cols, Entities: make([][]Cell, rows)}
	b := make([]Cell, rows*cols)
	for i := range area.Entities {
		start := cols * i
		area.Entities[i] = b[start : start+cols : start+cols]
	}
	return area
}

func (a Area) clone() Area {
	c := createArea(a.Rows, a.Cols)
	for i := range a.Entities {
		copy(c.Entities[i], a.Entities[i])
	}
	return c
}

func (a Area) equal(o Area) bool {
	if a.Rows != o.Rows || a.Cols != o.Cols {
		return false
	}
	for i := range a.Entities {
		for j := range a.Entities[i] {
			if a.Entities[i][j] != o.Entities[i][j] {
				return false
			}
		}
	}
	return true
}
