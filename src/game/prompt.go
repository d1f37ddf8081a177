package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"obstaclelife/src/grid"
)

var errNoSeedFile = errors.New("no seed file given")

// Prompter asks the user for the options not given on the command line
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the question and returns the trimmed answer line
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskInt asks for a non negative integer
func (p *Prompter) AskInt(question string) (int, error) {
	a, err := p.Ask(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(a)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadConfig, a)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrBadConfig, n)
	}
	return n, nil
}

// Resolve fills the unset options of cfg by asking the user
// mode first, then the delay, then the iteration cap for the interactive modes or the seed file for the console
func Resolve(cfg Config, p *Prompter) (Config, error) {
	var err error
	if cfg.Mode == "" {
		if cfg.Mode, err = p.Ask("Select mode, [C]onsole, [G]raphical or [T]erminal: "); err != nil {
			return cfg, err
		}
	}
	if cfg.Mode, err = normalizeMode(cfg.Mode); err != nil {
		return cfg, err
	}

	if cfg.Interval == Unset {
		ms, err := p.AskInt("Delay between iterations in ms: ")
		if err != nil {
			return cfg, err
		}
		cfg.Interval = time.Duration(ms) * time.Millisecond
	}

	if cfg.Mode == ModeConsole {
		if cfg.SeedPath == "" && cfg.Template == "" && !cfg.Random {
			if cfg.SeedPath, err = p.Ask("Seed file name: "); err != nil {
				return cfg, err
			}
			if cfg.SeedPath == "" {
				return cfg, &grid.FileError{Err: errNoSeedFile}
			}
		}
		if cfg.MaxIterations == Unset {
			cfg.MaxIterations = 0
		}
	} else if cfg.MaxIterations == Unset {
		if cfg.MaxIterations, err = p.AskInt("Maximum iterations, 0 for no limit: "); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}
