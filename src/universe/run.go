package universe

import (
	"fmt"
	"math/rand"
	"time"
)

//Run validates the options, settles the initial area and does o.Steps steps with the engine
//it returns o.Steps+1 areas in chronological order, the first one is the initial area
//when stateCh is not nil the Status is written to it after every step and on finish
func Run(e Engine, o *Options, stateCh chan<- Status) ([]*Area, error) {
	if o == nil {
		o = &DefaultOptions
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	initial, err := settleInitial(o)
	if err != nil {
		return nil, err
	}
	return evolve(e, initial, o.Steps, stateCh), nil
}

//RunRandom runs the simple engine from the area seeded by rnd
func RunRandom(size int, steps int, p float64, rnd *rand.Rand) ([]*Area, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps must not be negative, got %d: %w", steps, ErrInvalidArgument)
	}
	initial, err := NewRandomArea(size, p, rnd)
	if err != nil {
		return nil, err
	}
	return evolve(SimpleEngine{}, initial, steps, nil), nil
}

func settleInitial(o *Options) (*Area, error) {
	if o.Template != "" {
		return Settle(o.Size, templates[o.Template].Coordinates)
	}
	return NewRandomArea(o.Size, o.AliveProbability, rand.New(rand.NewSource(o.Seed)))
}

func evolve(e Engine, initial *Area, steps int, stateCh chan<- Status) []*Area {
	history := make([]*Area, 0, steps+1)
	history = append(history, initial)
	current := initial
	for i := 1; i <= steps; i++ {
		start := time.Now()
		current = e.Step(current)
		history = append(history, current)
		if stateCh != nil {
			stateCh <- Status{
				IterationNum:  i,
				RunningMode:   RunningStateStep,
				LiveCells:     current.LiveCells(),
				IterationTime: time.Since(start),
			}
		}
	}
	if stateCh != nil {
		stateCh <- Status{
			IterationNum: steps,
			RunningMode:  RunningStateFinished,
			LiveCells:    current.LiveCells(),
		}
	}
	return history
}
