//go:build linux

package entropy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const defaultDevice = "/dev/urandom"

// platformRead requests bytes from getrandom(2).
func platformRead(p []byte) (int, error) {
	n, err := unix.Getrandom(p, 0)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, errInterrupted
	case errors.Is(err, unix.ENOSYS):
		return 0, fmt.Errorf("getrandom: %w", errUnsupported)
	default:
		return 0, fmt.Errorf("getrandom: %w", err)
	}
}
