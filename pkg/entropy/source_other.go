//go:build !linux && !windows

package entropy

const defaultDevice = "/dev/urandom"

// platformRead reports that no kernel call is wired on this platform, which
// sends Fill straight to the random device.
func platformRead(p []byte) (int, error) {
	return 0, errUnsupported
}
