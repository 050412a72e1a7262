// Package maze reads map files: rows of whitespace-separated single-character
// tokens describing spawns and obstacles on a rectangular grid.
package maze

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/robber-runaway/internal/core"
	"github.com/vovakirdan/robber-runaway/internal/registry"
)

// Recognized map tokens. Any other token is floor.
const (
	TokenPlayer   = "P"
	TokenChaser   = "C"
	TokenObstacle = "X"
)

// Parse errors.
var (
	ErrEmpty           = errors.New("map has no rows")
	ErrJagged          = errors.New("map rows have different lengths")
	ErrNoPlayer        = errors.New("map has no player spawn (P)")
	ErrMultiplePlayers = errors.New("map has more than one player spawn (P)")
)

// Layout is the static content of a map.
type Layout struct {
	Name      string
	Width     int
	Height    int
	Player    core.Point
	Chasers   []core.Point
	Obstacles []core.Point
}

// Parse reads a map from r. Width is taken from the first row; every other
// row must have the same number of tokens. Trailing blank lines are ignored.
func Parse(r io.Reader) (*Layout, error) {
	var rows [][]string
	var lineNums []int

	scanner := bufio.NewScanner(r)
	blankRun := 0
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			blankRun++
			continue
		}
		if blankRun > 0 && len(rows) > 0 {
			// A blank line inside the grid is a zero-length row.
			return nil, fmt.Errorf("line %d: %w", line-blankRun, ErrJagged)
		}
		blankRun = 0
		rows = append(rows, tokens)
		lineNums = append(lineNums, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	layout := &Layout{
		Width:  len(rows[0]),
		Height: len(rows),
	}

	havePlayer := false
	for y, row := range rows {
		if len(row) != layout.Width {
			return nil, fmt.Errorf("line %d: %w: expected %d tokens, got %d",
				lineNums[y], ErrJagged, layout.Width, len(row))
		}
		for x, tok := range row {
			p := core.Point{X: x, Y: y}
			switch tok {
			case TokenPlayer:
				if havePlayer {
					return nil, fmt.Errorf("line %d: %w", lineNums[y], ErrMultiplePlayers)
				}
				havePlayer = true
				layout.Player = p
			case TokenChaser:
				layout.Chasers = append(layout.Chasers, p)
			case TokenObstacle:
				layout.Obstacles = append(layout.Obstacles, p)
			}
		}
	}

	if !havePlayer {
		return nil, ErrNoPlayer
	}

	return layout, nil
}

// Load reads and parses a map file.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot open map: %w", err)
	}
	defer f.Close()

	layout, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("maze: %s: %w", path, err)
	}
	layout.Name = path
	return layout, nil
}

// Resolve loads a built-in map by name, or a map file by path.
func Resolve(nameOrPath string) (*Layout, error) {
	if registry.Exists(nameOrPath) {
		m, err := registry.Lookup(nameOrPath)
		if err != nil {
			return nil, err
		}
		layout, err := Parse(bytes.NewReader(m.Data))
		if err != nil {
			return nil, fmt.Errorf("maze: built-in map %s: %w", m.Name, err)
		}
		layout.Name = m.Name
		return layout, nil
	}
	return Load(nameOrPath)
}
