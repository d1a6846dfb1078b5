package sim

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
)

// Option configures a Simulator.
type Option interface {
	ApplyOption(s *Simulator) error
}

var _ Option = (OptFunc)(nil)

// OptFunc adapts a function to the Option interface.
type OptFunc func(*Simulator) error

func (o OptFunc) ApplyOption(s *Simulator) error { return o(s) }

var _ Option = (Options)(nil)

// Options applies a list of options in order.
type Options []Option

func (o Options) ApplyOption(s *Simulator) error { return s.SetOptions([]Option(o)...) }

// SetOptions applies opts to the simulator.
func (s *Simulator) SetOptions(opts ...Option) error {
	if err := errors.NilReceiver(s); err != nil {
		return err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetScreen injects a prepared screen, typically a
// tcell.SimulationScreen in tests. Run still calls Init and Fini on
// it.
func SetScreen(scr tcell.Screen) Option {
	return OptFunc(func(s *Simulator) error {
		if err := errors.NilParam(scr); err != nil {
			return err
		}
		s.screen = scr
		return nil
	})
}

// SetInterval fixes the delay between animation steps.
func SetInterval(d time.Duration) Option {
	return OptFunc(func(s *Simulator) error {
		if d <= 0 {
			return errors.Errorf(`non-positive step interval %s`, d)
		}
		s.interval = d
		return nil
	})
}

// SetScenes replaces the built-in scene list.
func SetScenes(scenes ...Scene) Option {
	return OptFunc(func(s *Simulator) error {
		if len(scenes) == 0 {
			return errors.New(`provided empty scene list`)
		}
		for _, sc := range scenes {
			if sc == nil {
				return errors.New(`provided nil scene`)
			}
		}
		s.scenes = scenes
		return nil
	})
}

// SetFont sets the canvas font for text drawing scenes.
func SetFont(f *fb.Font) Option {
	return OptFunc(func(s *Simulator) error {
		s.canvas.SetFont(f)
		return nil
	})
}

// SetLogger attaches a logger for loop events.
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(s *Simulator) error {
		s.logger = logger
		return nil
	})
}
