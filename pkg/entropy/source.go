// Package entropy supplies cryptographically secure random bytes for
// mnemonic generation.
//
// The System source asks the kernel CSPRNG first and falls back to the
// platform's secure random device when the kernel interface is missing or
// failing. Fill either fills the whole buffer or returns ErrSource with the
// buffer zeroed; a partially random buffer is never handed back.
package entropy

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
)

// DefaultMaxStalls is the number of consecutive attempts without new bytes
// after which Fill gives up.
const DefaultMaxStalls = 16

// ErrSource is returned when secure randomness could not be obtained.
var ErrSource = errors.New("secure random source unavailable")

var (
	// errInterrupted marks a transient condition (EINTR, EAGAIN) worth retrying.
	errInterrupted = errors.New("interrupted")
	// errUnsupported marks a kernel interface that does not exist on this host.
	errUnsupported = errors.New("not supported")
	errNoDevice    = errors.New("no fallback device configured")
	errNoProgress  = errors.New("read returned no bytes")
)

// Source fills buffers with secure random bytes.
type Source interface {
	Fill(buf []byte) error
}

// System reads from the operating system's secure random facilities.
// A System holds no state between calls and may be shared.
type System struct {
	// Device is the fallback random device, read when the kernel call is
	// unavailable. Empty disables the fallback.
	Device string
	// MaxStalls bounds consecutive attempts that yield no bytes.
	MaxStalls int

	primary func(p []byte) (int, error)
	log     *zerolog.Logger
}

// NewSystem returns a System using the platform's kernel CSPRNG and default
// fallback device.
func NewSystem() *System {
	return &System{
		Device:    defaultDevice,
		MaxStalls: DefaultMaxStalls,
		primary:   platformRead,
	}
}

// SetLogger overrides the component logger. Call before sharing the System.
func (s *System) SetLogger(l zerolog.Logger) {
	s.log = &l
}

func (s *System) logger() *zerolog.Logger {
	if s.log != nil {
		return s.log
	}
	return &klog.Entropy
}

// Fill populates buf entirely with secure random bytes.
func (s *System) Fill(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	defer klog.Benchmark(s.logger(), "entropy fill")()

	maxStalls := s.MaxStalls
	if maxStalls <= 0 {
		maxStalls = DefaultMaxStalls
	}
	f := &filler{
		sys:        s,
		buf:        buf,
		usePrimary: s.primary != nil,
		bo:         backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(maxStalls)),
	}
	defer f.close()

	if err := backoff.Retry(f.step, f.bo); err != nil {
		clear(buf)
		return fmt.Errorf("%w: filled %d of %d bytes: %v", ErrSource, f.filled, len(buf), err)
	}
	return nil
}

// filler is the per-call state of one Fill.
type filler struct {
	sys        *System
	buf        []byte
	filled     int
	usePrimary bool
	dev        *os.File
	bo         backoff.BackOff
}

// step reads until the buffer is full or an attempt makes no progress.
// Any progress resets the stall budget.
func (f *filler) step() error {
	for f.filled < len(f.buf) {
		var (
			n   int
			err error
		)
		if f.usePrimary {
			n, err = f.sys.primary(f.buf[f.filled:])
			if err != nil && !errors.Is(err, errInterrupted) {
				f.sys.logger().Warn().
					Err(err).
					Str("device", f.sys.Device).
					Msg("kernel random source failed, falling back to device")
				f.usePrimary = false
				continue
			}
		} else {
			n, err = f.readDevice(f.buf[f.filled:])
		}

		if n <= 0 {
			if err == nil {
				err = errNoProgress
			}
			return err
		}
		f.filled += n
		f.bo.Reset()
	}
	return nil
}

func (f *filler) readDevice(p []byte) (int, error) {
	if f.dev == nil {
		if f.sys.Device == "" {
			return 0, backoff.Permanent(errNoDevice)
		}
		dev, err := os.Open(f.sys.Device)
		if err != nil {
			return 0, backoff.Permanent(fmt.Errorf("open %s: %w", f.sys.Device, err))
		}
		f.dev = dev
	}
	return f.dev.Read(p)
}

func (f *filler) close() {
	if f.dev != nil {
		f.dev.Close()
		f.dev = nil
	}
}

var (
	defaultOnce   sync.Once
	defaultSource *System
)

// Default returns the process-wide System, created on first use.
func Default() *System {
	defaultOnce.Do(func() {
		defaultSource = NewSystem()
	})
	return defaultSource
}

// Read returns n secure random bytes from the Default source.
func Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := Default().Fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
