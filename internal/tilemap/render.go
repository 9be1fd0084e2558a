package tilemap

import (
	"bufio"
	"io"

	"github.com/pdrpinto/gridsearch"
)

// Tiles used by Render, lowest precedence first.
const (
	tileFree        = '.'
	tileWall        = '#'
	tileExplored    = '+'
	tileFrontier    = 'o'
	tilePath        = '*'
	tileSource      = 'S'
	tileDestination = 'D'
)

// Render draws the map with the search state of snap on top: explored cells,
// the tips of frontier paths, the current path and the two endpoints.
func (m *Map) Render(w io.Writer, snap gridsearch.Snapshot) error {
	grid := make([][]byte, m.Height)
	for y := range grid {
		grid[y] = make([]byte, m.Width)
		for x := range grid[y] {
			grid[y][x] = tileFree
			if m.walls[y*m.Width+x] {
				grid[y][x] = tileWall
			}
		}
	}
	put := func(c gridsearch.Cell, tile byte) {
		if m.InBounds(c) {
			grid[c.Y][c.X] = tile
		}
	}

	for _, c := range snap.Explored {
		put(c, tileExplored)
	}
	for _, entry := range snap.Frontier {
		if len(entry.Path) > 0 {
			put(entry.Path.Last(), tileFrontier)
		}
	}
	for _, c := range snap.Current {
		put(c, tilePath)
	}
	if snap.Status != gridsearch.StatusIdle {
		put(snap.Source, tileSource)
		put(snap.Destination, tileDestination)
	}

	bw := bufio.NewWriter(w)
	for _, row := range grid {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
