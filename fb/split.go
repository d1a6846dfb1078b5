package fb

// SplitHorizontally divides the canvas into adjacent child canvases
// laid out left to right, sized proportionally to the weights. Weights
// of zero or less count as one. The integer remainder is handed out
// one pixel at a time starting from the first child, so the widths sum
// exactly to the canvas width. Children inherit the current font.
func (c *Canvas) SplitHorizontally(weights ...int16) []Canvas {
	sizes := splitSizes(c.Width(), weights)
	out := make([]Canvas, len(sizes))
	x := int16(0)
	for i, size := range sizes {
		out[i] = c.SubUnchecked(size, c.Height(), x, 0)
		x += size
	}
	return out
}

// SplitVertically is SplitHorizontally for children stacked top to
// bottom.
func (c *Canvas) SplitVertically(weights ...int16) []Canvas {
	sizes := splitSizes(c.Height(), weights)
	out := make([]Canvas, len(sizes))
	y := int16(0)
	for i, size := range sizes {
		out[i] = c.SubUnchecked(c.Width(), size, 0, y)
		y += size
	}
	return out
}

func splitSizes(total int16, weights []int16) []int16 {
	if len(weights) == 0 {
		return nil
	}

	totalWeight := 0
	for _, w := range weights {
		if w <= 0 {
			w = 1
		}
		totalWeight += int(w)
	}

	sizes := make([]int16, len(weights))
	remaining := int(total)
	for i, w := range weights {
		if w <= 0 {
			w = 1
		}
		sizes[i] = int16(int(total) * int(w) / totalWeight)
		remaining -= int(sizes[i])
	}

	for i := 0; remaining > 0; i = (i + 1) % len(sizes) {
		sizes[i]++
		remaining--
	}
	return sizes
}
