// Package rs485 configures RS485 half-duplex transceiver behavior on Linux
// serial devices through the kernel's serial_rs485 ioctl interface.
//
// RS485 runs a differential pair half-duplex: a transceiver chip drives the
// bus while transmitting and must release it to receive. Kernel serial
// drivers can toggle the transceiver's drive-enable line (usually wired to
// RTS) automatically around each transmission. This package reads and writes
// the driver control block that governs that behavior.
//
// # Basic Usage
//
// Read, modify, and apply the configuration of an already-open descriptor:
//
//	f, err := os.OpenFile("/dev/ttyS0", os.O_RDWR, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	cfg := rs485.Default().
//	    SetRTSOnSend(true).
//	    SetRTSAfterSend(false)
//	if err := rs485.SetConfig(f, cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Or adjust the live settings in place:
//
//	err := rs485.UpdateConfig(f, func(c *rs485.Config) {
//	    c.SetDelayAfterSendMs(2)
//	})
//
// # Descriptor Ownership
//
// The package never opens, closes, or duplicates descriptors. Anything with
// an Fd() uintptr method (an *os.File, most serial port types) satisfies the
// Device interface; the fd-based Load, Store, and Update forms take a raw
// descriptor directly.
//
// # Flag Semantics
//
//   - FlagEnabled: RS485 control is active; when clear the driver ignores
//     every other field.
//   - FlagRTSOnSend: level of the drive-enable signal while transmitting.
//   - FlagRTSAfterSend: level of the drive-enable signal after transmission.
//   - FlagRXDuringTX: keep the receiver enabled while transmitting (local
//     echo). Some UARTs misbehave with this off; see your board docs.
//
// Which RTS polarity is correct depends on how the transceiver is wired;
// boards differ. Flag bits the kernel reports that this package does not
// recognize are preserved verbatim across a load/store round-trip, as are
// the structure's padding words.
//
// # Error Handling
//
// Load and Store surface the operating system's error unchanged (a
// unix.Errno), with no domain translation: a device without RS485 support
// typically reports ENOTTY or EINVAL, a closed descriptor EBADF. Check with
// errors.Is:
//
//	if errors.Is(err, unix.ENOTTY) {
//	    // driver has no RS485 support for this port
//	}
//
// # Concurrency
//
// Config is a plain value with no internal locking. Update performs a
// read-modify-write that is not atomic at the device level: a concurrent
// writer between the load and the store is silently overwritten. Callers
// needing atomicity across the sequence must serialize access to the
// descriptor themselves.
//
// The ioctl numbers and structure layout are Linux-specific.
package rs485
