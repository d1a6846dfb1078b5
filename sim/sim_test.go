package sim_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/fonts"
	"github.com/pagefb/pagefb/internal/testutil"
	"github.com/pagefb/pagefb/sim"
)

func TestNew(t *testing.T) {
	s, err := sim.New(64, 32)
	require.NoError(t, err)
	assert.Equal(t, int16(64), s.Frame().Width())
	assert.Equal(t, int16(32), s.Frame().Height())
	assert.Same(t, fonts.Gyver5x7, s.Canvas().Font())

	_, err = sim.New(0, 32)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)
	_, err = sim.New(-1, 8)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)

	s, err = sim.New(2, 32767)
	require.NoError(t, err)
	assert.Equal(t, int16(32767), s.Frame().Height())
	assert.Len(t, s.Frame().Bytes(), 8192)
}

func TestOptionValidation(t *testing.T) {
	_, err := sim.New(16, 16, sim.SetInterval(0))
	assert.Error(t, err)
	_, err = sim.New(16, 16, sim.SetScenes())
	assert.Error(t, err)
	_, err = sim.New(16, 16, sim.SetScenes(sim.Scene(nil)))
	assert.Error(t, err)
	_, err = sim.New(16, 16, sim.SetScreen(nil))
	assert.Error(t, err)
}

func TestBuiltinScenesProduceOutput(t *testing.T) {
	now := time.UnixMilli(123456789)
	for _, scene := range sim.BuiltinScenes() {
		buf, v := testutil.NewBuffer(64, 32)
		c := fb.NewCanvas(v)
		c.SetFont(fonts.Gyver5x7)

		require.NotEmpty(t, scene.Name())
		for i := 0; i < 3; i++ {
			assert.True(t, scene.Step(&c, now.Add(time.Duration(i)*time.Second)), scene.Name())
		}
		assert.NotEqual(t, make([]byte, len(buf)), buf, `scene %s drew nothing`, scene.Name())
	}
}

func TestBuiltinSceneNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, scene := range sim.BuiltinScenes() {
		assert.False(t, seen[scene.Name()], scene.Name())
		seen[scene.Name()] = true
	}
}

func TestOrbitsSkipsTinyFrames(t *testing.T) {
	var orbits sim.Scene
	for _, scene := range sim.BuiltinScenes() {
		if scene.Name() == `orbits` {
			orbits = scene
		}
	}
	require.NotNil(t, orbits)

	buf, v := testutil.NewBuffer(6, 6)
	c := fb.NewCanvas(v)
	assert.True(t, orbits.Step(&c, time.Now()))
	assert.Equal(t, make([]byte, len(buf)), buf)
}

// stubScene counts steps and marks the top left pixel.
type stubScene struct {
	name string
	keep bool

	mu    sync.Mutex
	steps int
}

func (s *stubScene) Name() string { return s.name }

func (s *stubScene) Step(c *fb.Canvas, now time.Time) bool {
	s.mu.Lock()
	s.steps++
	s.mu.Unlock()
	c.Dot(0, 0, true)
	return s.keep
}

func (s *stubScene) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

func screenText(t *testing.T, scr tcell.SimulationScreen) string {
	t.Helper()
	cells, w, h := scr.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestRunKeyControls(t *testing.T) {
	scr := tcell.NewSimulationScreen(`UTF-8`)
	require.NotNil(t, scr)
	s, err := sim.New(32, 16,
		sim.SetScreen(scr),
		sim.SetInterval(5*time.Millisecond),
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	time.Sleep(80 * time.Millisecond)
	assert.Contains(t, screenText(t, scr), `dashboard 1/5`)

	scr.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	time.Sleep(80 * time.Millisecond)
	assert.Contains(t, screenText(t, scr), `bounce 2/5`)

	scr.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	time.Sleep(80 * time.Millisecond)
	assert.Contains(t, screenText(t, scr), `[paused]`)

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal(`no exit after quit key`)
	}
}

func TestRunContextCancel(t *testing.T) {
	scr := tcell.NewSimulationScreen(`UTF-8`)
	s, err := sim.New(16, 8, sim.SetScreen(scr))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestRunAdvancesOnSceneEnd(t *testing.T) {
	scr := tcell.NewSimulationScreen(`UTF-8`)
	first := &stubScene{name: `first`}
	second := &stubScene{name: `second`, keep: true}
	s, err := sim.New(16, 8,
		sim.SetScreen(scr),
		sim.SetScenes(first, second),
		sim.SetInterval(5*time.Millisecond),
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	time.Sleep(80 * time.Millisecond)

	assert.Contains(t, screenText(t, scr), `second 2/2`)
	assert.Equal(t, 1, first.Steps())
	assert.Greater(t, second.Steps(), 0)

	// the stub's pixel lands in the first half-block cell as white on black
	cells, w, _ := scr.GetContents()
	cell := cells[w]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '▀', cell.Runes[0])
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	assert.Equal(t, st, cell.Style)

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal(`no exit after quit key`)
	}
}
