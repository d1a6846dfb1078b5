// Package sim animates a frame buffer in a terminal window, one
// half-block cell per two pixels, so drawing code can be exercised
// without display hardware.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/fonts"
	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/internal/logx"
)

// Scene draws animation frames onto a canvas. Step renders the frame
// for the given time and reports whether the scene wants to keep
// running; a false return advances the simulator to the next scene.
type Scene interface {
	Name() string
	Step(c *fb.Canvas, now time.Time) bool
}

// Simulator owns a frame buffer and replays scenes onto a terminal
// screen.
type Simulator struct {
	screen   tcell.Screen
	buf      []byte
	view     fb.FrameView
	canvas   fb.Canvas
	scenes   []Scene
	scene    int
	paused   bool
	interval time.Duration
	logger   *slog.Logger
}

// New returns a simulator with a width x height frame buffer, the
// built-in scene list and a 20 steps per second interval.
func New(width, height int16, opts ...Option) (*Simulator, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(fb.ErrSizeTooSmall)
	}
	buf := make([]byte, int(width)*((int(height)+7)/8))
	view, err := fb.NewFrameView(buf, width, width, height, 0, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	s := &Simulator{
		buf:      buf,
		view:     view,
		canvas:   fb.NewCanvas(view),
		scenes:   BuiltinScenes(),
		interval: 50 * time.Millisecond,
	}
	s.canvas.SetFont(fonts.Gyver5x7)
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Canvas returns the canvas scenes draw on.
func (s *Simulator) Canvas() *fb.Canvas { return &s.canvas }

// Frame returns the simulated frame buffer view.
func (s *Simulator) Frame() fb.FrameView { return s.view }

// Run drives the scene loop until a quit key, a closed screen or ctx
// cancellation. It initializes the screen and restores the terminal
// on return.
func (s *Simulator) Run(ctx context.Context) error {
	if err := errors.NilReceiver(s); err != nil {
		return err
	}
	scr := s.screen
	if scr == nil {
		var err error
		scr, err = tcell.NewScreen()
		if err != nil {
			return errors.New(err)
		}
		s.screen = scr
	}
	if err := scr.Init(); err != nil {
		return errors.New(err)
	}
	defer scr.Fini()
	scr.HideCursor()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logx.Info(`simulator started`, s.logger, `size`, fmt.Sprintf(`%dx%d`, s.view.Width(), s.view.Height()), `scenes`, len(s.scenes))
	s.stepScene(time.Now())
	s.drawFrame(scr)

	for {
		select {
		case <-ctx.Done():
			return errors.New(ctx.Err())
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := s.handleEvent(scr, ev); quit {
				return nil
			}
		case now := <-ticker.C:
			if s.paused {
				continue
			}
			s.stepScene(now)
			s.drawFrame(scr)
		}
	}
}

// handleEvent reacts to one screen event and reports whether the loop
// should quit.
func (s *Simulator) handleEvent(scr tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		scr.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyTab:
			s.nextScene()
			s.stepScene(time.Now())
			s.drawFrame(scr)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				s.paused = !s.paused
				s.drawFrame(scr)
			}
		}
	}
	return false
}

func (s *Simulator) stepScene(now time.Time) {
	if !s.scenes[s.scene].Step(&s.canvas, now) {
		s.nextScene()
	}
}

func (s *Simulator) nextScene() {
	s.scene = (s.scene + 1) % len(s.scenes)
	s.canvas.Fill(false)
	s.canvas.SetCursor(0, 0)
	logx.Debug(`scene switch`, s.logger, `scene`, s.scenes[s.scene].Name())
}

// drawFrame paints the status line, the frame buffer as half-block
// cells and the key help, then flushes the screen.
func (s *Simulator) drawFrame(scr tcell.Screen) {
	scr.Clear()
	status := fmt.Sprintf(`%s %d/%d`, s.scenes[s.scene].Name(), s.scene+1, len(s.scenes))
	if s.paused {
		status += ` [paused]`
	}
	drawText(scr, 0, 0, tcell.StyleDefault.Reverse(true), status)
	h := int(s.view.Height())
	for cy := 0; cy < (h+1)/2; cy++ {
		for x := 0; x < int(s.view.Width()); x++ {
			st := tcell.StyleDefault.
				Foreground(cellColor(s.view.Pixel(int16(x), int16(2*cy)))).
				Background(cellColor(s.view.Pixel(int16(x), int16(2*cy+1))))
			scr.SetContent(x, cy+1, '▀', nil, st)
		}
	}
	drawText(scr, 0, (h+1)/2+1, tcell.StyleDefault.Dim(true), `q quit  space pause  tab next scene`)
	scr.Show()
}

func cellColor(on bool) tcell.Color {
	if on {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}

func drawText(scr tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		scr.SetContent(x+i, y, r, nil, style)
	}
}
