package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
)

const (
	panelHeight  = 48
	buttonWidth  = 64
	buttonHeight = 24
	buttonGap    = 8
	minWidth     = 3*(buttonWidth+buttonGap) + 480
)

var (
	colorEmpty    = color.RGBA{20, 20, 24, 255}
	colorAlive    = color.RGBA{60, 220, 90, 255}
	colorObstacle = color.RGBA{200, 60, 50, 255}
	colorGridLine = color.RGBA{40, 40, 48, 255}
	colorPanel    = color.RGBA{30, 30, 36, 255}
	colorButton   = color.RGBA{70, 70, 90, 255}
	colorButtonHi = color.RGBA{90, 110, 160, 255}
	colorText     = color.White

	cellColors = map[grid.Cell]color.Color{
		grid.Empty:    colorEmpty,
		grid.Alive:    colorAlive,
		grid.Obstacle: colorObstacle,
	}
)

// button is a clickable control drawn in the panel under the field
type button struct {
	control sim.Control
	rect    image.Rectangle
}

// Window is the graphical front end, it implements ebiten.Game
type Window struct {
	title    string
	cellSize int
	ctx      context.Context
	c        *sim.Controller
	buttons  []button
	width    int
	height   int
	delay    time.Duration
	lastStep time.Time
}

func New(title string, cellSize int) *Window {
	return &Window{title: title, cellSize: cellSize}
}

func (w *Window) Run(ctx context.Context, g *grid.Grid, delay time.Duration, maxIterations int) error {
	if w.cellSize <= 0 {
		return fmt.Errorf("invalid cell size %d", w.cellSize)
	}
	w.ctx = ctx
	w.c = sim.NewController(g, maxIterations)
	w.delay = delay
	w.width = g.Cols() * w.cellSize
	if w.width < minWidth {
		w.width = minWidth
	}
	w.height = g.Rows()*w.cellSize + panelHeight
	w.buttons = layoutButtons(g.Rows() * w.cellSize)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// layoutButtons places Start, Stop and Undo in a row under the field
func layoutButtons(top int) []button {
	controls := []sim.Control{sim.ControlStart, sim.ControlStop, sim.ControlUndo}
	b := make([]button, 0, len(controls))
	y := top + (panelHeight-buttonHeight)/2
	for i, ctl := range controls {
		x := buttonGap + i*(buttonWidth+buttonGap)
		b = append(b, button{ctl, image.Rect(x, y, x+buttonWidth, y+buttonHeight)})
	}
	return b
}

func (w *Window) controlAt(x int, y int) sim.Control {
	p := image.Pt(x, y)
	for _, b := range w.buttons {
		if p.In(b.rect) {
			return b.control
		}
	}
	return sim.ControlNone
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.handleKeys()
	w.handleMouse()

	if w.c.Mode() == sim.Running && time.Since(w.lastStep) >= w.delay {
		w.c.Tick()
		w.lastStep = time.Now()
	}
	return nil
}

func (w *Window) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		w.c.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		w.c.Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		w.c.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		w.c.CycleEdit()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.c.Clear()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		w.c.SelectEdit(grid.Alive)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		w.c.SelectEdit(grid.Empty)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		w.c.SelectEdit(grid.Obstacle)
	}
}

func (w *Window) handleMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ctl := w.controlAt(x, y); ctl != sim.ControlNone {
			w.c.Activate(ctl)
			return
		}
	}
	// holding a button paints along the pointer path
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		w.c.Click(x, y, w.cellSize)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		w.c.PaintObstacle(x, y, w.cellSize)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		w.c.Erase(x, y, w.cellSize)
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorGridLine)
	cs := float32(w.cellSize)
	gap := float32(0)
	if w.cellSize > 3 {
		gap = 1
	}
	for r, row := range w.c.Grid().Area().Entities {
		for c, e := range row {
			vector.DrawFilledRect(screen, float32(c)*cs, float32(r)*cs, cs-gap, cs-gap, cellColors[e], false)
		}
	}

	top := w.c.Grid().Rows() * w.cellSize
	vector.DrawFilledRect(screen, 0, float32(top), float32(w.width), panelHeight, colorPanel, false)
	mx, my := ebiten.CursorPosition()
	for _, b := range w.buttons {
		clr := colorButton
		if image.Pt(mx, my).In(b.rect) {
			clr = colorButtonHi
		}
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
		text.Draw(screen, b.control.String(), basicfont.Face7x13, r.Min.X+12, r.Min.Y+16, colorText)
	}

	s := w.c.Status()
	readout := fmt.Sprintf("Iteration: %d  %v  edit: %v", s.IterationNum, s.RunningMode, s.Edit)
	if s.StopReason != sim.StopNone {
		readout += "  (" + s.StopReason.String() + ")"
	}
	x := buttonGap + 3*(buttonWidth+buttonGap)
	text.Draw(screen, readout, basicfont.Face7x13, x, top+panelHeight/2+4, colorText)
	vector.DrawFilledRect(screen, float32(w.width-20), float32(top+panelHeight/2-6), 12, 12, cellColors[s.Edit], false)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
