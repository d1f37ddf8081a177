package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFile is matched by every FileError
var ErrFile = errors.New("seed file error")

// FileError reports a seed file which could not be read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read seed file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrFile
}

// seed file tokens
const (
	tokenAlive    = "1"
	tokenObstacle = "X"
	tokenEmpty    = "0"
)

// InitializeFromInput fills the grid from the seed file at path
func (g *Grid) InitializeFromInput(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer f.Close()
	if err := g.Load(f); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// Load reads whitespace separated tokens row by row
// a short input leaves the remaining cells as they are, surplus tokens are ignored
func (g *Grid) Load(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	total := g.area.Rows * g.area.Cols
	for i := 0; i < total && s.Scan(); i++ {
		g.area.Entities[i/g.area.Cols][i%g.area.Cols] = parseToken(s.Text())
	}
	g.history.Reset()
	return s.Err()
}

// WriteSeed writes the grid in the seed file format, one row per line
func (g *Grid) WriteSeed(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.area.Entities {
		for j, c := range row {
			if j != 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(formatToken(c))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

func parseToken(t string) Cell {
	switch t {
	case tokenAlive:
		return Alive
	case "X", "x":
		return Obstacle
	}
	return Empty
}

func formatToken(c Cell) string {
	switch c {
	case Alive:
		return tokenAlive
	case Obstacle:
		return tokenObstacle
	}
	return tokenEmpty
}
