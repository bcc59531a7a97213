package universe

import (
	"errors"
	"math/rand"
	"testing"
)

func mustArea(t *testing.T, rows [][]Cell) *Area {
	t.Helper()
	a, err := NewArea(rows)
	if err != nil {
		t.Fatalf("NewArea: %v", err)
	}
	return a
}

func mustSettle(t *testing.T, size int, vc [][]int) *Area {
	t.Helper()
	a, err := Settle(size, vc)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	return a
}

func TestLiveNeighboursSingleCell(t *testing.T) {
	dead := mustArea(t, [][]Cell{{Dead}})
	if n := dead.LiveNeighbours(0, 0); n != 0 {
		t.Fatalf("dead 1x1: got %d neighbours, expected 0", n)
	}
	alive := mustArea(t, [][]Cell{{Alive}})
	if n := alive.LiveNeighbours(0, 0); n != 8 {
		t.Fatalf("alive 1x1: got %d neighbours, expected 8", n)
	}
}

func TestLiveNeighboursTwoByTwo(t *testing.T) {
	// on a 2x2 torus the row and column offsets -1 and +1 point to the same cell,
	// so the orthogonal neighbours count twice and the diagonal one four times
	a := mustArea(t, [][]Cell{
		{Alive, Dead},
		{Dead, Dead},
	})
	expects := [][]int{
		{0, 2},
		{2, 4},
	}
	for row := range expects {
		for col := range expects[row] {
			if n := a.LiveNeighbours(row, col); n != expects[row][col] {
				t.Errorf("cell (%d,%d): got %d neighbours, expected %d", row, col, n, expects[row][col])
			}
		}
	}

	full := mustArea(t, [][]Cell{
		{Alive, Alive},
		{Alive, Alive},
	})
	full.Walk(func(row int, col int, _ Cell) {
		if n := full.LiveNeighbours(row, col); n != 8 {
			t.Errorf("full 2x2 cell (%d,%d): got %d neighbours, expected 8", row, col, n)
		}
	})
}

func TestLiveNeighboursWrapsBothBorders(t *testing.T) {
	// live cells only in the corners: each corner sees the other three through the borders
	a := mustSettle(t, 5, [][]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}})
	for _, c := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
		if n := a.LiveNeighbours(c[0], c[1]); n != 3 {
			t.Errorf("corner %v: got %d neighbours, expected 3", c, n)
		}
	}
	if n := a.LiveNeighbours(2, 2); n != 0 {
		t.Errorf("centre: got %d neighbours, expected 0", n)
	}
	if n := a.LiveNeighbours(0, 2); n != 0 {
		t.Errorf("top middle: got %d neighbours, expected 0", n)
	}
}

func TestLiveNeighboursRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, size := range []int{1, 2, 3, 8, 17} {
		a, err := NewRandomArea(size, 0.5, rnd)
		if err != nil {
			t.Fatal(err)
		}
		a.Walk(func(row int, col int, _ Cell) {
			if n := a.LiveNeighbours(row, col); n < 0 || n > 8 {
				t.Fatalf("size %d cell (%d,%d): %d neighbours out of range", size, row, col, n)
			}
		})
	}
}

func TestNewRandomAreaProbabilityBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	empty, err := NewRandomArea(10, 0, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if empty.LiveCells() != 0 {
		t.Fatalf("p=0: got %d live cells", empty.LiveCells())
	}
	full, err := NewRandomArea(10, 1, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if full.LiveCells() != 100 {
		t.Fatalf("p=1: got %d live cells, expected 100", full.LiveCells())
	}
}

func TestNewRandomAreaInvalid(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	cases := []struct {
		name string
		size int
		p    float64
	}{
		{"zero size", 0, 0.5},
		{"negative size", -1, 0.5},
		{"negative probability", 4, -0.1},
		{"probability above one", 4, 1.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewRandomArea(c.size, c.p, rnd)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if a != nil {
				t.Fatalf("expected no area on error")
			}
		})
	}
}

func TestNewAreaRejectsMalformed(t *testing.T) {
	cases := map[string][][]Cell{
		"empty":      {},
		"ragged":     {{Dead, Dead}, {Dead}},
		"not square": {{Dead, Dead, Dead}, {Dead, Dead, Dead}},
		"bad value":  {{Dead, 2}, {Dead, Dead}},
	}
	for name, rows := range cases {
		if _, err := NewArea(rows); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
}

func TestNewAreaCopiesRows(t *testing.T) {
	rows := [][]Cell{{Alive, Dead}, {Dead, Dead}}
	a := mustArea(t, rows)
	rows[0][0] = Dead
	if a.Get(0, 0) != Alive {
		t.Fatalf("area shares memory with the source rows")
	}
}

func TestSettleWrapsCoordinates(t *testing.T) {
	a := mustSettle(t, 3, [][]int{{-1, 0}, {3, 4}})
	if a.Get(0, 2) != Alive {
		t.Errorf("x=-1 should wrap to column 2:\n%v", a)
	}
	if a.Get(1, 0) != Alive {
		t.Errorf("[3,4] should wrap to row 1, column 0:\n%v", a)
	}
	if a.LiveCells() != 2 {
		t.Errorf("got %d live cells, expected 2", a.LiveCells())
	}
	if _, err := Settle(3, [][]int{{1}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a malformed coordinate, got %v", err)
	}
}

func TestAreaString(t *testing.T) {
	a := mustSettle(t, 3, [][]int{{1, 0}, {2, 2}})
	expected := ".#.\n...\n..#"
	if a.String() != expected {
		t.Fatalf("got\n%v\nexpected\n%v", a, expected)
	}
}
