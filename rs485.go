package rs485

// Flag is a single option bit in the kernel's serial_rs485 flag word.
type Flag uint32

const (
	// FlagEnabled activates RS485 line-driver control. When clear, the
	// driver ignores all other fields.
	FlagEnabled Flag = 1 << 0

	// FlagRTSOnSend asserts the drive-enable signal while transmitting.
	FlagRTSOnSend Flag = 1 << 1

	// FlagRTSAfterSend keeps the drive-enable signal asserted after
	// transmission completes instead of releasing it.
	FlagRTSAfterSend Flag = 1 << 2

	// FlagRXDuringTX keeps reception enabled while transmitting.
	FlagRXDuringTX Flag = 1 << 4
)

// recognizedFlags is the set of bits this package names. Anything else the
// kernel hands back is carried in Config.residual, untouched.
const recognizedFlags = FlagEnabled | FlagRTSOnSend | FlagRTSAfterSend | FlagRXDuringTX

// Config mirrors one serial device's RS485 line-driver control state. It is
// a plain value: it owns no descriptor and performs no I/O on its own. Zero
// value equals New().
type Config struct {
	flags           Flag      // recognized option bits
	residual        uint32    // kernel flag bits this package does not name
	delayBeforeSend uint32    // ms the driver holds enable before transmitting
	delayAfterSend  uint32    // ms the driver holds enable after transmitting
	padding         [5]uint32 // preserved verbatim from the kernel structure
}

// New returns a configuration with every flag cleared and both delays zero.
func New() *Config {
	return &Config{}
}

// Default returns the minimal usable half-duplex profile: FlagEnabled set,
// everything else zero. Callers are expected to set the RTS polarity flags
// to match their transceiver wiring.
func Default() *Config {
	return &Config{flags: FlagEnabled}
}

// Has reports whether the given flag bit is set.
func (c *Config) Has(f Flag) bool {
	return c.flags&f != 0
}

func (c *Config) setFlag(f Flag, on bool) *Config {
	if on {
		c.flags |= f
	} else {
		c.flags &^= f
	}
	return c
}

// SetEnabled turns RS485 line-driver control on or off. Unless enabled,
// none of the other settings take effect.
func (c *Config) SetEnabled(on bool) *Config {
	return c.setFlag(FlagEnabled, on)
}

// SetRTSOnSend selects the drive-enable level during transmission:
// asserted (true) or released (false).
func (c *Config) SetRTSOnSend(on bool) *Config {
	return c.setFlag(FlagRTSOnSend, on)
}

// SetRTSAfterSend selects the drive-enable level once transmission has
// completed: held asserted (true) or released (false).
func (c *Config) SetRTSAfterSend(on bool) *Config {
	return c.setFlag(FlagRTSAfterSend, on)
}

// SetRXDuringTX controls whether the receiver stays enabled while
// transmitting. Some UARTs cut transmissions short with this off, so it is
// often best left on even for half-duplex use.
func (c *Config) SetRXDuringTX(on bool) *Config {
	return c.setFlag(FlagRXDuringTX, on)
}

// SetDelayBeforeSendMs sets how long, in milliseconds, the driver holds the
// enable signal asserted before transmission begins. No range check is
// performed; the driver rejects values it cannot honor at store time.
func (c *Config) SetDelayBeforeSendMs(ms uint32) *Config {
	c.delayBeforeSend = ms
	return c
}

// SetDelayAfterSendMs sets how long, in milliseconds, the driver holds the
// enable signal asserted after transmission completes.
func (c *Config) SetDelayAfterSendMs(ms uint32) *Config {
	c.delayAfterSend = ms
	return c
}

// Enabled reports whether RS485 line-driver control is active.
func (c *Config) Enabled() bool { return c.Has(FlagEnabled) }

// RTSOnSend reports the drive-enable level during transmission.
func (c *Config) RTSOnSend() bool { return c.Has(FlagRTSOnSend) }

// RTSAfterSend reports the drive-enable level after transmission.
func (c *Config) RTSAfterSend() bool { return c.Has(FlagRTSAfterSend) }

// RXDuringTX reports whether reception stays enabled while transmitting.
func (c *Config) RXDuringTX() bool { return c.Has(FlagRXDuringTX) }

// DelayBeforeSendMs returns the pre-transmission enable hold time in
// milliseconds.
func (c *Config) DelayBeforeSendMs() uint32 { return c.delayBeforeSend }

// DelayAfterSendMs returns the post-transmission enable hold time in
// milliseconds.
func (c *Config) DelayAfterSendMs() uint32 { return c.delayAfterSend }
