package universe

import (
	"errors"
	"fmt"
	"time"
)

//ErrInvalidArgument is returned (wrapped) for every rejected size, step count, probability, template or engine
var ErrInvalidArgument = errors.New("invalid argument")

//Engine computes the next generation of the universe
//Step must not modify the current area and must return a fresh one
type Engine interface {
	Name() string
	Step(current *Area) *Area
}

//Options represents the simulation's configurable options
type Options struct {
	Size             int
	Steps            int
	AliveProbability float64
	Seed             int64
	Template         string //seeding template name, empty means random seeding
	Workers          int    //used by the multithreaded engine only
}

//Status represents the status of the simulation after the concrete step
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSize             = 64
	DefSteps            = 50
	DefAliveProbability = 0.1
)

const (
	RunningStateStep     = 0x1
	RunningStateFinished = 0x3
)

var DefaultOptions = Options{
	Size:             DefSize,
	Steps:            DefSteps,
	AliveProbability: DefAliveProbability,
	Workers:          DefWorkers,
}

//Validate checks the options before any computation begins
func (o *Options) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d: %w", o.Size, ErrInvalidArgument)
	}
	if o.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d: %w", o.Steps, ErrInvalidArgument)
	}
	if err := validateProbability(o.AliveProbability); err != nil {
		return err
	}
	if o.Template != "" {
		if _, ok := templates[o.Template]; !ok {
			return fmt.Errorf("unknown template %q: %w", o.Template, ErrInvalidArgument)
		}
	}
	return nil
}

func validateProbability(p float64) error {
	//the negated form also rejects NaN
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("alive probability must be within [0,1], got %v: %w", p, ErrInvalidArgument)
	}
	return nil
}
