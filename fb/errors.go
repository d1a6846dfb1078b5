package fb

import (
	"errors"
)

// Construction-time failures returned by NewFrameView and Sub.
// Drawing operations never fail; out-of-range coordinates clip
// silently.
var (
	ErrSizeTooSmall      = errors.New(`frame size too small`)
	ErrSizeTooLarge      = errors.New(`frame size exceeds parent`)
	ErrOffsetOutOfBounds = errors.New(`frame offset out of bounds`)
	ErrBufferNotInit     = errors.New(`frame buffer not initialized`)
)
