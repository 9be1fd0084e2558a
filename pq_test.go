package gridsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontierOrdersByPriority(t *testing.T) {
	var f frontier
	f.push(Path{{3, 0}}, 3)
	f.push(Path{{1, 0}}, 1)
	f.push(Path{{2, 0}}, 2)
	f.push(Path{{0, 0}}, 0.5)

	var got []Cell
	for f.len() > 0 {
		got = append(got, f.pop().Path.Last())
	}
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, got)
}

func TestFrontierStableOnTies(t *testing.T) {
	var f frontier
	for i := 0; i < 20; i++ {
		f.push(Path{{i, 0}}, 0)
	}
	f.push(Path{{-1, 0}}, -1)

	assert.Equal(t, Cell{-1, 0}, f.pop().Path.Last())
	for i := 0; i < 20; i++ {
		item := f.pop()
		assert.Equal(t, Cell{i, 0}, item.Path.Last())
		assert.Equal(t, uint64(i), item.Seq)
	}
	assert.Equal(t, 0, f.len())
}

func TestFrontierInterleavedTies(t *testing.T) {
	var f frontier
	f.push(Path{{0, 0}}, 1)
	f.push(Path{{1, 0}}, 1)
	assert.Equal(t, Cell{0, 0}, f.pop().Path.Last())
	f.push(Path{{2, 0}}, 1)
	f.push(Path{{3, 0}}, 0)
	assert.Equal(t, Cell{3, 0}, f.pop().Path.Last())
	assert.Equal(t, Cell{1, 0}, f.pop().Path.Last())
	assert.Equal(t, Cell{2, 0}, f.pop().Path.Last())
}
