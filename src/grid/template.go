package grid

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Template represents the seeding template which can be used to settle the grid with predefined data
type Template struct {
	Name        string  // template name
	Descr       string  // template descr
	Coordinates [][]int // array of [row, col] coordinates
}

var templates = map[string]Template{}

func init() {
	for _, t := range []Template{
		{"blinker", "period 2 oscillator", [][]int{{1, 0}, {1, 1}, {1, 2}}},
		{"block", "still life", [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"beacon", "period 2 oscillator", [][]int{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}}},
		{"toad", "period 2 oscillator", [][]int{{1, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 2}}},
		{"glider", "travels diagonally", [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{"lwss", "lightweight spaceship", [][]int{{0, 1}, {0, 4}, {1, 0}, {2, 0}, {2, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3}}},
		{"sample", "a block with a neighbouring cluster", [][]int{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		}},
	} {
		AddTemplate(t)
	}
}

// AddTemplate adds the seeding template to the registry
func AddTemplate(t Template) {
	templates[t.Name] = t
}

// Templates returns the registered template names, sorted
func Templates() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupTemplate returns the template registered under name
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// SettleTemplate places the named template with its origin at row, col
// cells falling outside the grid are skipped, obstacles are kept
func (g *Grid) SettleTemplate(name string, row int, col int) error {
	t, ok := templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	g.Settle(t.Coordinates, row, col)
	return nil
}

// Settle makes the cells at the [row, col] coordinates alive, shifted by the origin
func (g *Grid) Settle(vc [][]int, row int, col int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		r, c := v[0]+row, v[1]+col
		if !g.inside(r, c) || g.area.Entities[r][c] == Obstacle {
			continue
		}
		g.area.Entities[r][c] = Alive
	}
	g.history.Reset()
}
