package pathutil

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is matched by every error a sized variant returns when the
// caller's buffer cannot hold the result.
var ErrBufferTooSmall = errors.New("buffer too small")

// BufferTooSmallError reports the exact length a sized variant needed.
// Nothing was written to the buffer.
type BufferTooSmallError struct {
	Required int
	Capacity int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", ErrBufferTooSmall, e.Required, e.Capacity)
}

func (e *BufferTooSmallError) Unwrap() error {
	return ErrBufferTooSmall
}
