package bake

import (
	"image"
	"log/slog"

	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/scale"
)

// Option configures a Baker.
type Option interface {
	ApplyOption(b *Baker) error
}

var _ Option = (OptFunc)(nil)

// OptFunc adapts a function to the Option interface.
type OptFunc func(*Baker) error

func (o OptFunc) ApplyOption(b *Baker) error { return o(b) }

var _ Option = (Options)(nil)

// Options applies a list of options in order.
type Options []Option

func (o Options) ApplyOption(b *Baker) error { return b.SetOptions([]Option(o)...) }

// SetOptions applies opts to the baker.
func (b *Baker) SetOptions(opts ...Option) error {
	if err := errors.NilReceiver(b); err != nil {
		return err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(b); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetSize scales sources to width x height before reduction. A zero
// size keeps the source dimensions.
func SetSize(width, height int) Option {
	return OptFunc(func(b *Baker) error {
		if width < 0 || height < 0 {
			return errors.Errorf(`negative target size %dx%d`, width, height)
		}
		b.size = image.Point{X: width, Y: height}
		return nil
	})
}

// SetScaler picks the scaler used when a target size is set.
func SetScaler(s scale.Scaler) Option {
	return OptFunc(func(b *Baker) error {
		if err := errors.NilParam(s); err != nil {
			return err
		}
		b.scaler = s
		return nil
	})
}

// SetReduce picks the 1-bit reduction strategy.
func SetReduce(r Reduce) Option {
	return OptFunc(func(b *Baker) error {
		if r > ReduceDither {
			return errors.Errorf(`unknown reduction %d`, r)
		}
		b.reduce = r
		return nil
	})
}

// SetLevel fixes the cutoff for ReduceThreshold.
func SetLevel(level uint8) Option {
	return OptFunc(func(b *Baker) error {
		b.level = level
		return nil
	})
}

// SetInvert flips the on/off sense of the baked bitmap, for dark-on-
// light sources meant to light up on a dark display.
func SetInvert(invert bool) Option {
	return OptFunc(func(b *Baker) error {
		b.invert = invert
		return nil
	})
}

// SetLogger attaches a logger for pipeline progress.
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(b *Baker) error {
		b.logger = logger
		return nil
	})
}
