package sim

import (
	"math"
	"time"

	"github.com/pagefb/pagefb/assets"
	"github.com/pagefb/pagefb/fb"
)

// BuiltinScenes returns fresh instances of every demo scene.
func BuiltinScenes() []Scene {
	return []Scene{
		&dashboard{},
		&bounce{},
		&orbits{},
		&glyphs{},
		&blit{},
	}
}

// dashboard stacks a clock header, a gauge and a sparkline of the
// same signal.
type dashboard struct {
	samples []int16
}

func (d *dashboard) Name() string { return `dashboard` }

func (d *dashboard) Step(c *fb.Canvas, now time.Time) bool {
	c.Fill(false)
	rows := c.SplitVertically(1, 1, 2)
	head, gauge, plot := &rows[0], &rows[1], &rows[2]

	head.Fill(true)
	head.SetCursor(1, 1)
	head.Text(now.Format(`15:04:05`), false)

	level := (math.Sin(float64(now.UnixMilli())/900) + 1) / 2
	gauge.Rect(0, 2, gauge.Width()-1, gauge.Height()-3, fb.FillBorder)
	if fill := int16(level * float64(gauge.Width()-5)); fill > 0 {
		gauge.Rect(2, 4, 2+fill, gauge.Height()-5, fb.Fill)
	}

	d.samples = append(d.samples, int16(level*float64(plot.Height()-1)))
	if len(d.samples) > int(plot.Width()) {
		d.samples = d.samples[len(d.samples)-int(plot.Width()):]
	}
	x0 := plot.Width() - int16(len(d.samples))
	prevX, prevY := int16(-1), int16(0)
	for i, v := range d.samples {
		x, y := x0+int16(i), plot.Height()-1-v
		if prevX >= 0 {
			plot.Line(prevX, prevY, x, y, true)
		}
		prevX, prevY = x, y
	}
	return true
}

// bounce reflects a filled ball off the frame border.
type bounce struct {
	x, y   float64
	vx, vy float64
}

func (b *bounce) Name() string { return `bounce` }

func (b *bounce) Step(c *fb.Canvas, now time.Time) bool {
	const r = 3
	if b.vx == 0 && b.vy == 0 {
		b.x, b.y = float64(c.Width())/2, float64(c.Height())/2
		b.vx, b.vy = 1.6, 1.1
	}
	b.x += b.vx
	b.y += b.vy
	if b.x < r+1 || b.x > float64(c.Width())-r-2 {
		b.vx = -b.vx
		b.x += 2 * b.vx
	}
	if b.y < r+1 || b.y > float64(c.Height())-r-2 {
		b.vy = -b.vy
		b.y += 2 * b.vy
	}
	c.Fill(false)
	c.Rect(0, 0, c.Width()-1, c.Height()-1, fb.FillBorder)
	c.Circle(int16(b.x), int16(b.y), r, fb.Fill)
	return true
}

// orbits spins satellites around concentric rings.
type orbits struct{}

func (orbits) Name() string { return `orbits` }

func (orbits) Step(c *fb.Canvas, now time.Time) bool {
	c.Fill(false)
	cx, cy := (c.Width()-1)/2, (c.Height()-1)/2
	max := cy - 1
	if cx < cy {
		max = cx - 1
	}
	if max < 3 {
		return true
	}
	t := float64(now.UnixMilli()) / 1000
	for i := int16(1); i <= 3; i++ {
		r := max * i / 3
		c.Circle(cx, cy, r, fb.FillBorder)
		ang := t * float64(4-i)
		x := cx + int16(math.Round(float64(r)*math.Cos(ang)))
		y := cy + int16(math.Round(float64(r)*math.Sin(ang)))
		c.Circle(x, y, 1, fb.Fill)
	}
	c.Dot(cx, cy, true)
	return true
}

// glyphs pages through the printable range of the current font.
type glyphs struct{}

func (glyphs) Name() string { return `glyphs` }

func (glyphs) Step(c *fb.Canvas, now time.Time) bool {
	c.Fill(false)
	c.SetCursor(0, 0)
	c.AutoNextLine = true
	rows := int(c.Height() / c.Font().HeightTotal())
	cols := int(c.Width() / c.Font().WidthTotal())
	if rows < 1 || cols < 1 {
		return true
	}
	const first, last = 32, 126
	perPage := rows * cols
	pages := (last - first + perPage) / perPage
	page := int(now.Unix()/2) % pages
	out := make([]byte, 0, perPage)
	for ch := first + page*perPage; ch <= last && len(out) < perPage; ch++ {
		out = append(out, byte(ch))
	}
	c.Text(string(out), true)
	return true
}

// blit marches a sprite row across the frame and blinks a second
// asset over it.
type blit struct{}

func (blit) Name() string { return `blit` }

func (blit) Step(c *fb.Canvas, now time.Time) bool {
	c.Fill(false)
	ms := now.UnixMilli()
	stride := assets.Invader.Width() + 4
	shift := int16(ms / 100 % int64(stride))
	for y := int16(2); y+assets.Invader.Height() <= c.Height(); y += assets.Invader.Height() + 4 {
		for x := -stride; x < c.Width(); x += stride {
			c.Bitmap(x+shift, y, assets.Invader, true)
		}
	}
	if ms/500%2 == 0 {
		hx := c.Width()/2 - assets.Heart.Width()/2
		hy := c.Height()/2 - assets.Heart.Height()/2
		c.Rect(hx-2, hy-2, hx+assets.Heart.Width()+1, hy+assets.Heart.Height()+1, fb.Clear)
		c.Bitmap(hx, hy, assets.Heart, true)
	}
	return true
}
