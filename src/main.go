package main

import (
	"fmt"
	"lifegif/src/universe"
	"lifegif/src/view"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
)

type EnvOptions struct {
	engine     string
	output     string
	delay      time.Duration
	resolution int
	preview    bool
	quiet      bool
	noColor    bool
}

func main() {
	eo, uo := initOptions()
	out := view.NewConsoleOut(os.Stdout, !eo.noColor, eo.quiet)

	e, err := universe.NewEngine(eo.engine, uo)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	out.Register(*uo, e.Name(), eo.output)
	out.Start()

	stateCh := make(chan universe.Status, 10) //the buffered channel to getting the simulation status
	var history []*universe.Area
	go func() {
		history, err = universe.Run(e, uo, stateCh)
		close(stateCh)
	}()
	for st := range stateCh {
		out.Refresh(st)
	}
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}

	g := view.NewGifOut(eo.resolution, eo.delay)
	if err := g.WriteFile(eo.output, history); err != nil {
		out.Error(err)
		os.Exit(1)
	}
	out.Written(eo.output, len(history))

	if eo.preview {
		ui, err := view.NewConsoleUI(history, eo.delay)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if err := ui.Start(); err != nil {
			out.Error(err)
			os.Exit(1)
		}
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	uo.Size = 0
	uo.Steps = 0
	uo.Seed = time.Now().UnixNano()
	eo = &EnvOptions{
		engine:     "simple",
		output:     "output.gif",
		delay:      view.DefFrameDelay,
		resolution: view.DefResolution,
	}

	flaggy.SetName("lifegif")
	flaggy.SetDescription("Runs \"The Life\" game on a toroidal NxN field and writes the animated GIF")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Size, "n", "size", "Size of the field side (required)")
	flaggy.Int(&uo.Steps, "t", "steps", "How many timesteps to simulate (required)")
	flaggy.String(&eo.output, "o", "output", "Name of the output GIF file")
	flaggy.Float64(&uo.AliveProbability, "p", "probability", "Probability of a cell to be alive initially")
	flaggy.Int64(&uo.Seed, "s", "seed", "Seed of the initial random field (default: current time)")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&uo.Template, "m", "template", "Settle with the template instead of random data ["+strings.Join(universe.TemplateNames(), "|")+"]")
	flaggy.Int(&uo.Workers, "w", "workers", "Workers of the multithreaded engine")
	flaggy.Duration(&eo.delay, "d", "delay", "Frame display time in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&eo.resolution, "r", "resolution", "Width and height of the GIF frames in pixels")
	flaggy.Bool(&eo.preview, "v", "preview", "Replay the frames in the terminal after writing the file")
	flaggy.Bool(&eo.quiet, "q", "quiet", "Print errors only")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable colored output")

	flaggy.Parse()

	if uo.Size <= 0 {
		flaggy.ShowHelpAndExit(fmt.Sprintf("size must be a positive integer, got %d", uo.Size))
	}
	if uo.Steps <= 0 {
		flaggy.ShowHelpAndExit(fmt.Sprintf("steps must be a positive integer, got %d", uo.Steps))
	}
	if eo.resolution <= 0 {
		flaggy.ShowHelpAndExit(fmt.Sprintf("resolution must be a positive integer, got %d", eo.resolution))
	}
	if eo.delay < 10*time.Millisecond {
		flaggy.ShowHelpAndExit(fmt.Sprintf("delay must be at least 10ms, got %v", eo.delay))
	}
	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}
