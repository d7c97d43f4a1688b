package rs485

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// wireConfig mirrors struct serial_rs485 from <linux/serial.h>. The kernel
// copies exactly this layout in and out of the TIOCGRS485/TIOCSRS485
// ioctls, so field order, widths, and the padding block are fixed.
type wireConfig struct {
	Flags              uint32
	DelayRTSBeforeSend uint32
	DelayRTSAfterSend  uint32
	Padding            [5]uint32
}

const wireSize = 32 // unsafe.Sizeof(wireConfig{}), checked in tests

// wire flattens the config back into the kernel layout, merging the
// residual (unrecognized) flag bits in with the typed ones.
func (c *Config) wire() wireConfig {
	return wireConfig{
		Flags:              uint32(c.flags) | c.residual,
		DelayRTSBeforeSend: c.delayBeforeSend,
		DelayRTSAfterSend:  c.delayAfterSend,
		Padding:            c.padding,
	}
}

// fromWire splits the kernel flag word into recognized bits and residual,
// keeping the padding words so a later Store writes back exactly what the
// kernel reported.
func fromWire(w wireConfig) *Config {
	return &Config{
		flags:           Flag(w.Flags) & recognizedFlags,
		residual:        w.Flags &^ uint32(recognizedFlags),
		delayBeforeSend: w.DelayRTSBeforeSend,
		delayAfterSend:  w.DelayRTSAfterSend,
		padding:         w.Padding,
	}
}

// ioctl performs a raw ioctl on fd. The error, if any, is the unix.Errno
// straight from the kernel; no translation is applied.
func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Load reads the current RS485 configuration from the serial device behind
// fd. The descriptor must refer to a serial device whose driver implements
// TIOCGRS485; otherwise the kernel's error (commonly ENOTTY or EINVAL) is
// returned unchanged.
func Load(fd int) (*Config, error) {
	var w wireConfig
	if err := ioctl(fd, unix.TIOCGRS485, unsafe.Pointer(&w)); err != nil {
		return nil, err
	}
	return fromWire(w), nil
}

// Store writes the full configuration to the serial device behind fd,
// immediately changing live line-driver behavior. The write is not
// transactional: to undo it, re-apply a previously loaded snapshot.
func (c *Config) Store(fd int) error {
	w := c.wire()
	return ioctl(fd, unix.TIOCSRS485, unsafe.Pointer(&w))
}

// Update loads the device's current configuration, applies fn to it, and
// stores the result. If the load fails, fn is never called and nothing is
// stored. The sequence is not atomic at the device level: a concurrent
// configuration change by another writer between the load and the store is
// silently overwritten. Callers that need atomicity must hold their own
// lock around the descriptor.
func Update(fd int, fn func(*Config)) error {
	c, err := Load(fd)
	if err != nil {
		return err
	}
	fn(c)
	return c.Store(fd)
}
