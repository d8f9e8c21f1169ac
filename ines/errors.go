package ines

import (
	"errors"
	"fmt"
)

// ErrTooShort is returned when the input has fewer bytes than the
// 16-byte header.
var ErrTooShort = errors.New("ines: input shorter than the 16-byte header")

// InvalidHeaderError reports the first header byte that broke a
// structural invariant: one of the magic bytes at index 0-3, or the
// trainer flag at index 6 promising 512 bytes the input does not have.
type InvalidHeaderError struct {
	Index int
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("ines: invalid header byte at index %d", e.Index)
}
