package view

import (
	"fmt"
	"io"
	"lifegif/src/universe"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut prints the running configuration, the progress and the summary of the simulation
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	quiet     bool
	startTime time.Time
}

func NewConsoleOut(w io.Writer, colors bool, quiet bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), quiet: quiet}
}

//Register prints the running configuration
func (c *ConsoleOut) Register(o universe.Options, engine string, output string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.w, c.au.Bold("Running configuration:"))
	d := map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Size, o.Size),
		"Max iterations": fmt.Sprintf("%v steps", o.Steps),
		"Engine":         engine,
		"Output":         output,
	}
	if o.Template != "" {
		d["Template"] = o.Template
	} else {
		d["Alive probability"] = o.AliveProbability
		d["Seed"] = o.Seed
	}
	c.printHashData(d)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Refresh prints the progress every 10 iterations and the summary on finish
func (c *ConsoleOut) Refresh(st universe.Status) {
	if c.quiet {
		return
	}
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		_, _ = fmt.Fprintln(c.w, c.au.Colorize("\nFinished:", aurora.CyanFg))
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateStep {
		if st.IterationNum%10 == 0 {
			_, _ = fmt.Fprintf(c.w, "  Iterations done: %v\n", st.IterationNum)
		}
	}
}

//Written reports the written animation file
func (c *ConsoleOut) Written(path string, frames int) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintf(c.w, "\n%v %v frames to %v\n", c.au.Green("Wrote"), frames, path)
}

//Error prints the error message, it is printed in the quiet mode too
func (c *ConsoleOut) Error(err error) {
	_, _ = fmt.Fprintf(c.w, "%v %v\n", c.au.Red("Error:"), err)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", c.au.Colorize(propName, aurora.GreenFg), d[propName])
	}
}
