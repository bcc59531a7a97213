package universe

import (
	"golang.org/x/sync/errgroup"
)

/*
	Engine implementation with multithreaded computation algorithm
	the field is splitted into the row bands each of which is computed by individual goroutine
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

type MultithreadedEngine struct {
	workers int
}

//workArea describe the rows [y1, y2] computed by one worker
type workArea struct {
	y1 int
	y2 int
}

func NewMultithreadedEngine(o *Options) Engine {
	workers := o.Workers
	if workers <= 0 {
		workers = DefWorkers
	}
	return &MultithreadedEngine{workers: workers}
}

func (me *MultithreadedEngine) Name() string {
	return "multithreaded"
}

//Step calculates the next area, starts goroutines and waits for them
//every worker writes only its own rows of the next area
func (me *MultithreadedEngine) Step(current *Area) *Area {
	next := createArea(current.size)
	var g errgroup.Group
	g.SetLimit(me.workers)
	for _, wa := range me.workAreas(current.size) {
		wa := wa
		g.Go(func() error {
			calcArea(current, next, wa)
			return nil
		})
	}
	_ = g.Wait()
	return next
}

//workAreas splits size rows into bands of at least DefMinRowsPerWorker rows
func (me *MultithreadedEngine) workAreas(size int) []workArea {
	linesPerWorker := size / me.workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*me.workers < size {
		linesPerWorker++
	}
	was := make([]workArea, 0, me.workers)
	for y1 := 0; y1 < size; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > size-1 {
			y2 = size - 1
		}
		was = append(was, workArea{y1, y2})
	}
	return was
}

//calcArea calculates new states for the cells inside workArea
func calcArea(current *Area, next *Area, wa workArea) {
	for y := wa.y1; y <= wa.y2; y++ {
		for x := range current.entities[y] {
			next.entities[y][x] = cellNextState(current.entities[y][x], current.LiveNeighbours(y, x))
		}
	}
}
