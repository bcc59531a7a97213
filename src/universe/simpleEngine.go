package universe

import (
	"fmt"
	"sort"
)

/*
	Simple engine implementation with two buffers
	All cells state is calculated from the current area to the newly allocated one
*/
type SimpleEngine struct{}

func NewSimpleEngine(_ *Options) Engine {
	return SimpleEngine{}
}

func (SimpleEngine) Name() string {
	return "simple"
}

func (SimpleEngine) Step(current *Area) *Area {
	next := createArea(current.size)
	for y := range current.entities {
		for x := range current.entities[y] {
			next.entities[y][x] = cellNextState(current.entities[y][x], current.LiveNeighbours(y, x))
		}
	}
	return next
}

//cellNextState applies the transition rule to the cell with liveNeighbours live neighbours
func cellNextState(c Cell, liveNeighbours int) Cell {
	if liveNeighbours == 3 {
		return Alive
	} else if liveNeighbours < 2 || liveNeighbours > 3 {
		return Dead
	}
	return c
}

var engines = map[string]func(o *Options) Engine{
	"simple":        NewSimpleEngine,
	"multithreaded": NewMultithreadedEngine,
	"fft":           NewFFTEngine,
}

//NewEngine creates the engine registered under name
func NewEngine(name string, o *Options) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q: %w", name, ErrInvalidArgument)
	}
	if o == nil {
		o = &DefaultOptions
	}
	return f(o), nil
}

//EngineNames returns the sorted names of all engines
func EngineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}
