package lights

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrInvalidArgument is returned for unknown light names and bad input.
	ErrInvalidArgument = fmt.Errorf("lights: invalid argument: %w", syscall.EINVAL)
	// ErrClosed is returned by a Device after Close.
	ErrClosed = fmt.Errorf("lights: device closed: %w", syscall.ENODEV)
)

// Errno converts an error returned by this package to the 0 / -errno
// convention used by hardware modules. Errors without an errno map to -EIO.
func Errno(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return -int(errno)
	}
	return -int(syscall.EIO)
}
