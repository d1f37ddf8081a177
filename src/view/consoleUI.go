package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"obstaclelife/src/grid"
	"obstaclelife/src/sim"
)

// minTick paces the terminal refresh when no delay is given
const minTick = 16 * time.Millisecond

const fieldView = "field"

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the interactive terminal front end
// all grid changes run inside the gocui main loop, the ticker only posts updates to it
type ConsoleUI struct {
	c       *sim.Controller
	g       *gocui.Gui
	k       []keyBindings
	au      aurora.Aurora
	fillers map[grid.Cell]string
	delay   time.Duration
}

func NewConsoleUI(colors bool) *ConsoleUI {
	au := aurora.NewAurora(colors)
	t := ConsoleUI{
		au:      au,
		fillers: cellFillers(au),
	}
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'u', "U", "Undo", t.cmdUndo, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'e', "E", "Edit state", t.cmdCycleEdit, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{gocui.MouseLeft, "MOUSE L", "Set the cell", t.cmdMouseClick, fieldView},
		{gocui.MouseRight, "MOUSE R", "Obstacle", t.cmdMouseObstacle, fieldView},
		{gocui.MouseMiddle, "MOUSE M", "Erase obstacle", t.cmdMouseErase, fieldView},
	}
	return &t
}

func (t *ConsoleUI) Run(ctx context.Context, g *grid.Grid, delay time.Duration, maxIterations int) error {
	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("start terminal ui: %w", err)
	}
	defer gui.Close()

	t.g = gui
	t.c = sim.NewController(g, maxIterations)
	t.delay = delay
	gui.Mouse = true
	gui.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(t.k); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go t.ticker(ctx, done)

	if err := gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

// ticker posts a controller tick to the main loop every delay
func (t *ConsoleUI) ticker(ctx context.Context, done chan struct{}) {
	d := t.delay
	if d < minTick {
		d = minTick
	}
	tk := time.NewTicker(d)
	defer tk.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-tk.C:
			t.g.Update(func(*gocui.Gui) error {
				t.c.Tick()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView(fieldView)
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Game of Life with obstacles"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	t.renderConfiguration()

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus()

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ConsoleUI) renderField() {
	v, err := t.g.View(fieldView)
	if err != nil {
		return
	}
	v.Clear()
	a := t.c.Grid().Area()

	crop := false
	maxW, maxH := v.Size()
	if a.Cols > maxW || a.Rows > maxH {
		crop = true
	}

	var b bytes.Buffer
	for i, l := range a.Entities {
		// discard the data outside the view area
		if i >= maxH {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		if crop && i == (maxH-1) {
			b.WriteString(t.au.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j, e := range l {
			if j >= maxW {
				break
			}
			b.WriteString(t.fillers[e])
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	s := t.c.Status()
	mode := t.au.Colorize(s.RunningMode, aurora.BlueFg)
	if s.RunningMode == sim.Running {
		mode = t.au.Colorize(s.RunningMode, aurora.CyanFg)
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	_, _ = fmt.Fprintln(v, t.renderProp("Edit", "%v %v", t.fillers[s.Edit], s.Edit))
	_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Obstacles", "%v", s.Obstacles))
	_, _ = fmt.Fprintln(v, t.renderProp("Undo steps", "%v", s.HistoryDepth))
	if s.StopReason != sim.StopNone {
		_, _ = fmt.Fprintln(v, " "+t.au.Red(s.StopReason.String()).String())
	}
}

func (t *ConsoleUI) renderConfiguration() {
	v, err := t.g.View("configuration")
	if err != nil {
		return
	}
	g := t.c.Grid()
	limit := "unlimited"
	if m := t.c.Status().MaxIterations; m > 0 {
		limit = fmt.Sprintf("%v steps", m)
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", g.Rows(), g.Cols()))
	_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.delay))
	_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v", limit))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			return v, fmt.Errorf("terminal width is too small: %v", maxX)
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.c.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.c.Activate(sim.ControlStart)
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.c.Activate(sim.ControlStop)
	return nil
}

func (t *ConsoleUI) cmdUndo(_ *gocui.View) error {
	t.c.Activate(sim.ControlUndo)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.c.Clear()
	return nil
}

func (t *ConsoleUI) cmdCycleEdit(_ *gocui.View) error {
	t.c.CycleEdit()
	return nil
}

// every cell takes one terminal column, so the cursor is the cell position
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.Click(cx, cy, 1)
	return nil
}

func (t *ConsoleUI) cmdMouseObstacle(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.PaintObstacle(cx, cy, 1)
	return nil
}

func (t *ConsoleUI) cmdMouseErase(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.Erase(cx, cy, 1)
	return nil
}
