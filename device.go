package rs485

// Device is the one capability the package needs from a serial port type:
// access to its underlying descriptor. *os.File satisfies it, as do the
// port types of most serial libraries.
type Device interface {
	Fd() uintptr
}

// GetConfig reads the current RS485 configuration from d.
func GetConfig(d Device) (*Config, error) {
	return Load(int(d.Fd()))
}

// SetConfig applies c to d.
func SetConfig(d Device, c *Config) error {
	return c.Store(int(d.Fd()))
}

// UpdateConfig reads d's configuration, applies fn, and writes the result
// back. Same short-circuit and last-writer-wins semantics as Update.
func UpdateConfig(d Device, fn func(*Config)) error {
	return Update(int(d.Fd()), fn)
}
