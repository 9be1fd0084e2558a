// Package tilemap is a fixed-size tile grid that serves as the occupancy
// oracle for the gridsearch engine. Maps are read from a plain text format:
//
//	S..#....
//	.#.#.##.
//	.#...#.D
//
// where '.' is free, '#' is occupied, 'S' marks the source and 'D' the
// destination. The row index is Y and the column index is X. Every cell
// outside the map counts as occupied.
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pdrpinto/gridsearch"
)

// ErrEmptyMap is returned when a map file has no rows.
var ErrEmptyMap = errors.New("tilemap: map has no rows")

// Map is a rectangular grid of free and occupied tiles.
type Map struct {
	Width  int
	Height int
	walls  []bool

	Source         gridsearch.Cell
	HasSource      bool
	Destination    gridsearch.Cell
	HasDestination bool
}

// New returns an open map of the given size.
func New(width, height int) *Map {
	return &Map{Width: width, Height: height, walls: make([]bool, width*height)}
}

// InBounds reports whether c lies on the map.
func (m *Map) InBounds(c gridsearch.Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// IsOccupied implements gridsearch.Occupancy.
func (m *Map) IsOccupied(c gridsearch.Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.walls[c.Y*m.Width+c.X]
}

// SetOccupied marks c as occupied or free. Cells off the map are ignored.
func (m *Map) SetOccupied(c gridsearch.Cell, occupied bool) {
	if m.InBounds(c) {
		m.walls[c.Y*m.Width+c.X] = occupied
	}
}

// Walls lists the occupied cells row by row.
func (m *Map) Walls() []gridsearch.Cell {
	var cells []gridsearch.Cell
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.walls[y*m.Width+x] {
				cells = append(cells, gridsearch.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Parse reads a map in the text format described in the package comment.
// Blank lines are skipped; every row must have the same width.
func Parse(r io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r \t")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	m := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), m.Width)
		}
		for x, ch := range row {
			c := gridsearch.Cell{X: x, Y: y}
			switch ch {
			case '.':
			case '#':
				m.SetOccupied(c, true)
			case 'S':
				if m.HasSource {
					return nil, fmt.Errorf("second source at %v", c)
				}
				m.Source, m.HasSource = c, true
			case 'D':
				if m.HasDestination {
					return nil, fmt.Errorf("second destination at %v", c)
				}
				m.Destination, m.HasDestination = c, true
			default:
				return nil, fmt.Errorf("unexpected tile %q at %v", ch, c)
			}
		}
	}
	return m, nil
}

// Load parses the map file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return m, nil
}

// Random builds a map with clustered walls laid down by random walks. The
// keep cells are always left free.
func Random(r *rand.Rand, width, height, clusters, steps int, density float64, keep ...gridsearch.Cell) *Map {
	m := New(width, height)
	dirs := []gridsearch.Step{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for c := 0; c < clusters; c++ {
		p := gridsearch.Cell{X: r.Intn(width), Y: r.Intn(height)}
		for s := 0; s < steps; s++ {
			if r.Float64() < density {
				m.SetOccupied(p, true)
			}
			if np := p.Add(dirs[r.Intn(len(dirs))]); m.InBounds(np) {
				p = np
			}
		}
	}
	for _, c := range keep {
		m.SetOccupied(c, false)
	}
	return m
}
