package view

import (
	"bytes"
	"fmt"
	"lifegif/src/universe"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI plays the finished universe history in the terminal
//the frames are replayed in a loop with the fixed delay until the user quits
type ConsoleUI struct {
	g       *gocui.Gui
	k       []keyBindings
	history []*universe.Area
	delay   time.Duration

	mu    sync.Mutex
	frame int

	liveFiller string
	deadFiller string
	done       chan struct{}
}

func NewConsoleUI(history []*universe.Area, delay time.Duration) (*ConsoleUI, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("nothing to play: the history is empty")
	}
	if delay <= 0 {
		delay = DefFrameDelay
	}
	var err error
	t := ConsoleUI{
		history:    history,
		delay:      delay,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		done:       make(chan struct{}),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'q',
			"Q",
			"Exit",
			t.cmdQuit,
			""},
		{'r',
			"R",
			"Replay from the first frame",
			t.cmdRestart,
			""},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("bind %v: %w", kb.name, err)
		}
	}
	return nil
}

//Start runs the playback until the user quits, the terminal is restored on return
func (t *ConsoleUI) Start() error {
	go t.play()
	err := t.g.MainLoop()
	close(t.done)
	t.g.Close()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *ConsoleUI) play() {
	ticker := time.NewTicker(t.delay)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.frame = (t.frame + 1) % len(t.history)
			t.mu.Unlock()
			t.refresh()
		}
	}
}

func (t *ConsoleUI) current() (int, *universe.Area) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame, t.history[t.frame]
}

func (t *ConsoleUI) refresh() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField()
		t.renderStatus()
		return nil
	})
}

func (t *ConsoleUI) renderField() {
	v, e := t.g.View("battlefield")
	if e != nil {
		return
	}
	_, a := t.current()
	v.Clear()

	maxW, maxH := v.Size()
	crop := a.Size() > maxW || a.Size() > maxH

	var b bytes.Buffer
	a.Walk(func(row int, col int, c universe.Cell) {
		//discard the data outside the view area
		if row >= maxH || col >= maxW {
			return
		}
		if col == 0 && row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			if col == 0 {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			}
			return
		}
		if c == universe.Alive {
			b.WriteString(t.liveFiller)
		} else {
			b.WriteString(t.deadFiller)
		}
	})
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus() {
	v, e := t.g.View("status")
	if e != nil {
		return
	}
	frame, a := t.current()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v / %v", frame, len(t.history)-1))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", a.LiveCells()))
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", a.Size(), a.Size()))
	_, _ = fmt.Fprintln(v, t.renderProp("Frame delay", "%v", t.delay))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "\"The Life\" game replay"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus()

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdRestart(_ *gocui.View) error {
	t.mu.Lock()
	t.frame = 0
	t.mu.Unlock()
	t.renderField()
	t.renderStatus()
	return nil
}
