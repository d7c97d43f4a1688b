// Package tty opens serial devices in raw mode so the CLI commands have a
// descriptor to configure. It deliberately covers only what those commands
// need: 8N1 framing, a baud rate, and a read timeout. RS485 behavior itself
// is configured separately through the rs485 package.
package tty

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	ErrInvalidBaudRate = errors.New("invalid baud rate")
	ErrInvalidTimeout  = errors.New("invalid read timeout")
	ErrPortClosed      = errors.New("serial port is closed")
)

// Config holds the open-time settings for a port.
type Config struct {
	BaudRate          int
	ReadTimeoutTenths int // VTIME, tenths of a second (0-255)
}

// Option is a functional option for Open.
type Option func(*Config) error

// DefaultConfig returns 115200 baud with a 2.5 second read timeout.
func DefaultConfig() Config {
	return Config{
		BaudRate:          115200,
		ReadTimeoutTenths: 25,
	}
}

// WithBaudRate sets the baud rate. Only rates with a kernel B-constant are
// accepted.
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if _, err := baudConstant(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithReadTimeout sets the read timeout in tenths of a second (VTIME).
// Zero makes reads non-blocking.
func WithReadTimeout(tenths int) Option {
	return func(c *Config) error {
		if tenths < 0 || tenths > 255 {
			return ErrInvalidTimeout
		}
		c.ReadTimeoutTenths = tenths
		return nil
	}
}

// baudConstant converts an integer baud rate to the termios constant.
func baudConstant(rate int) (uint32, error) {
	switch rate {
	case 1200:
		return unix.B1200, nil
	case 2400:
		return unix.B2400, nil
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	case 230400:
		return unix.B230400, nil
	case 460800:
		return unix.B460800, nil
	case 921600:
		return unix.B921600, nil
	case 1000000:
		return unix.B1000000, nil
	case 3000000:
		return unix.B3000000, nil
	default:
		return 0, ErrInvalidBaudRate
	}
}

// Port is an open serial device. It satisfies rs485.Device via Fd.
type Port struct {
	mu     sync.RWMutex
	fd     int
	closed bool
}

// Open opens the device and configures it for raw 8N1 communication.
func Open(device string, opts ...Option) (*Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	fd, err := unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", device, err)
	}

	if err := configure(fd, config); err != nil {
		unix.Close(fd)
		return nil, err
	}

	return &Port{fd: fd}, nil
}

// configure puts the descriptor in raw mode, 8N1, at the configured rate.
func configure(fd int, config Config) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %v", err)
	}

	termios.Cflag = unix.CS8 | unix.CREAD | unix.CLOCAL
	termios.Iflag = 0
	termios.Oflag = 0
	termios.Lflag = 0

	// VMIN=0 with VTIME from config: reads return whatever arrived within
	// the timeout window.
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = uint8(config.ReadTimeoutTenths)

	baud, err := baudConstant(config.BaudRate)
	if err != nil {
		return err
	}
	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | baud
	termios.Ispeed = baud
	termios.Ospeed = baud

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("failed to set termios: %v", err)
	}

	return nil
}

// Fd returns the underlying descriptor number.
func (p *Port) Fd() uintptr {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return uintptr(p.fd)
}

// Read reads from the port, honoring the configured read timeout.
func (p *Port) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}
	return unix.Read(p.fd, buf)
}

// Write writes to the port.
func (p *Port) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}
	return unix.Write(p.fd, data)
}

// Close closes the port.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	err := unix.Close(p.fd)
	p.closed = true
	return err
}
