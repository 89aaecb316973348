package password

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("position out of range")
	ErrTooLong     = errors.New("maximum length exceeded")
	ErrBadIterator = errors.New("iterator does not reference the current buffer")
	ErrNotFound    = errors.New("secret not found")
)

func outOfRange(index, size int) error {
	return fmt.Errorf("%w (index = %d, size = %d)", ErrOutOfRange, index, size)
}

func tooLong(size, count int) error {
	return fmt.Errorf("%w (size = %d, count = %d)", ErrTooLong, size, count)
}

func badIterator() error {
	return ErrBadIterator
}
