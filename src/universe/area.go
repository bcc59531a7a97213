package universe

import (
	"fmt"
	"math/rand"
	"strings"
)

type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Area is one generation of the universe: a square toroidal field of cells
//An Area is never modified after it is returned to the caller
type Area struct {
	size     int
	entities [][]Cell
}

//NewRandomArea creates the area where every cell is alive with probability p
func NewRandomArea(size int, p float64, rnd *rand.Rand) (*Area, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d: %w", size, ErrInvalidArgument)
	}
	if err := validateProbability(p); err != nil {
		return nil, err
	}
	a := createArea(size)
	for y := range a.entities {
		for x := range a.entities[y] {
			if rnd.Float64() < p {
				a.entities[y][x] = Alive
			}
		}
	}
	return a, nil
}

//NewArea creates the area from the square matrix of cells, the rows are copied
func NewArea(rows [][]Cell) (*Area, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("area must have at least one row: %w", ErrInvalidArgument)
	}
	a := createArea(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), size, ErrInvalidArgument)
		}
		for x, c := range row {
			if c != Dead && c != Alive {
				return nil, fmt.Errorf("cell (%d,%d) has value %d: %w", x, y, c, ErrInvalidArgument)
			}
			a.entities[y][x] = c
		}
	}
	return a, nil
}

//Settle creates the area with live cells at the given [x,y] coordinates
//coordinates outside the area are wrapped around
func Settle(size int, vc [][]int) (*Area, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d: %w", size, ErrInvalidArgument)
	}
	a := createArea(size)
	for _, v := range vc {
		if len(v) != 2 {
			return nil, fmt.Errorf("coordinate %v is not an [x,y] pair: %w", v, ErrInvalidArgument)
		}
		a.entities[a.wrap(v[1])][a.wrap(v[0])] = Alive
	}
	return a, nil
}

//Size returns the length of the area side
func (a *Area) Size() int {
	return a.size
}

//Get returns the cell at row, col
func (a *Area) Get(row int, col int) Cell {
	return a.entities[row][col]
}

//LiveNeighbours counts live cells among the 8 cells surrounding row, col
//both coordinates are wrapped independently, so the result is always in [0,8]
func (a *Area) LiveNeighbours(row int, col int) int {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			liveNeighbours += int(a.entities[a.wrap(row+i)][a.wrap(col+j)])
		}
	}
	return liveNeighbours
}

//LiveCells calculates the count of live cells
func (a *Area) LiveCells() int {
	liveCells := 0
	a.Walk(func(row int, col int, c Cell) {
		liveCells += int(c)
	})
	return liveCells
}

//Walk walks the entire area row by row and calls the cb function for each cell
func (a *Area) Walk(cb func(row int, col int, c Cell)) {
	for y := range a.entities {
		for x := range a.entities[y] {
			cb(y, x, a.entities[y][x])
		}
	}
}

//Equal reports whether both areas have the same size and cells
func (a *Area) Equal(b *Area) bool {
	if a.size != b.size {
		return false
	}
	for y := range a.entities {
		for x := range a.entities[y] {
			if a.entities[y][x] != b.entities[y][x] {
				return false
			}
		}
	}
	return true
}

//String renders the area with '#' for live and '.' for dead cells, one line per row
func (a *Area) String() string {
	var b strings.Builder
	b.Grow(a.size * (a.size + 1))
	for y, l := range a.entities {
		if y != 0 {
			b.WriteByte('\n')
		}
		for _, c := range l {
			if c == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (a *Area) wrap(idx int) int {
	return (idx%a.size + a.size) % a.size
}

//createArea allocates the new area with all cells dead
func createArea(size int) *Area {
	area := Area{size: size, entities: make([][]Cell, size)}
	b := make([]Cell, size*size)
	for i := range area.entities {
		start := size * i
		area.entities[i] = b[start : start+size : start+size]
	}
	return &area
}
