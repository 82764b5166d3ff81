package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"spinWheelServer/config"
	"spinWheelServer/game"
	"spinWheelServer/surface"
)

const pointerRune = '▼'

var (
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	editingStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	winnerStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

type App struct {
	screen  tcell.Screen
	canvas  *surface.Terminal
	frames  *game.FrameQueue
	engine  *game.Engine
	editing bool
	slot    int
	winner  string
}

func NewApp(screen tcell.Screen, opts ...game.Option) *App {
	a := &App{
		screen: screen,
		canvas: surface.NewTerminal(screen),
		frames: &game.FrameQueue{},
	}
	opts = append(opts, game.OnWinner(func(r game.Result) {
		a.winner = "Winner: " + r.Label
		log.Printf("winner index=%d label=%q degrees=%.1f", r.Index, r.Label, r.TotalDegrees)
	}))
	a.engine = game.NewEngine(a.canvas, a.frames, opts...)
	return a
}

// HandleEvent applies one terminal event and reports whether the app keeps
// running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.editing {
			a.handleEditKey(ev)
			return true
		}
		return a.handleKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.engine.Draw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		a.spin()
	case tcell.KeyTab:
		a.editing = true
		a.slot = min(a.slot, a.engine.State().SectorCount-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.spin()
		case '+', '=':
			a.engine.SetSectorCount(1)
			a.slot = 0
		case '-', '_':
			a.engine.SetSectorCount(-1)
			a.slot = 0
		}
	}
	return true
}

func (a *App) handleEditKey(ev *tcell.EventKey) {
	state := a.engine.State()
	text := []rune(state.Labels[a.slot])

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		a.editing = false
	case tcell.KeyTab:
		a.slot = (a.slot + 1) % state.SectorCount
	case tcell.KeyBacktab:
		a.slot = (a.slot + state.SectorCount - 1) % state.SectorCount
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(text) > 0 {
			a.engine.SetLabel(a.slot, string(text[:len(text)-1]))
		}
	case tcell.KeyRune:
		if len(text) < config.MaxLabelLength {
			a.engine.SetLabel(a.slot, string(append(text, ev.Rune())))
		}
	}
}

func (a *App) spin() {
	if a.engine.Spin() {
		a.winner = ""
	}
}

// Tick runs queued animation frames and repaints the screen.
func (a *App) Tick(now time.Time) {
	a.frames.Flush(now)
	a.render()
}

func (a *App) render() {
	a.canvas.Present()

	cols, rows := a.screen.Size()
	a.screen.SetContent(cols/2, 0, pointerRune, nil, winnerStyle)

	state := a.engine.State()
	var status string
	switch {
	case a.editing:
		status = fmt.Sprintf(" Editing slot %d/%d: %s_  [Tab] next  [Enter] done", a.slot+1, state.SectorCount, state.Labels[a.slot])
		a.drawLine(rows-1, status, editingStyle)
	default:
		status = fmt.Sprintf(" Sectors: %d  [+/-] count  [Tab] edit labels  [Space] spin  [q] quit", state.SectorCount)
		a.drawLine(rows-1, status, statusStyle)
	}
	if a.winner != "" && rows > 1 {
		a.drawLine(rows-2, " "+a.winner, winnerStyle)
	}

	a.screen.Show()
}

func (a *App) drawLine(row int, text string, style tcell.Style) {
	cols, _ := a.screen.Size()
	col := 0
	for _, r := range text {
		if col >= cols {
			return
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// pollEvents forwards screen events until the screen is finalised (PollEvent
// returns nil) or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}

func (a *App) Run() {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, eventChan, done)

	a.engine.Draw()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !a.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}
