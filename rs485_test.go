package rs485

import "testing"

func TestNew(t *testing.T) {
	c := New()

	if c.Enabled() {
		t.Error("New config has FlagEnabled set")
	}
	if c.RTSOnSend() || c.RTSAfterSend() || c.RXDuringTX() {
		t.Error("New config has polarity flags set")
	}
	if c.DelayBeforeSendMs() != 0 || c.DelayAfterSendMs() != 0 {
		t.Errorf("New config has non-zero delays: before=%d after=%d",
			c.DelayBeforeSendMs(), c.DelayAfterSendMs())
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	if !c.Enabled() {
		t.Error("Default config is missing FlagEnabled")
	}
	if c.RTSOnSend() || c.RTSAfterSend() || c.RXDuringTX() {
		t.Error("Default config has polarity flags set")
	}
	if c.DelayBeforeSendMs() != 0 || c.DelayAfterSendMs() != 0 {
		t.Errorf("Default config has non-zero delays: before=%d after=%d",
			c.DelayBeforeSendMs(), c.DelayAfterSendMs())
	}
}

func TestFlagValues(t *testing.T) {
	// Bit positions are part of the kernel ABI and must never move. Note
	// the gap at 1<<3.
	tests := []struct {
		name string
		flag Flag
		want Flag
	}{
		{"FlagEnabled", FlagEnabled, 1 << 0},
		{"FlagRTSOnSend", FlagRTSOnSend, 1 << 1},
		{"FlagRTSAfterSend", FlagRTSAfterSend, 1 << 2},
		{"FlagRXDuringTX", FlagRXDuringTX, 1 << 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.flag != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, uint32(tt.flag), uint32(tt.want))
			}
		})
	}
}

func TestSettersTargetSingleFlag(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Config, bool) *Config
		flag Flag
	}{
		{"SetEnabled", (*Config).SetEnabled, FlagEnabled},
		{"SetRTSOnSend", (*Config).SetRTSOnSend, FlagRTSOnSend},
		{"SetRTSAfterSend", (*Config).SetRTSAfterSend, FlagRTSAfterSend},
		{"SetRXDuringTX", (*Config).SetRXDuringTX, FlagRXDuringTX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Start with every recognized flag set, clear the target,
			// and verify only that bit went away.
			c := New().
				SetEnabled(true).
				SetRTSOnSend(true).
				SetRTSAfterSend(true).
				SetRXDuringTX(true)

			tt.set(c, false)
			if c.Has(tt.flag) {
				t.Errorf("%s(false) left the flag set", tt.name)
			}
			if c.flags != recognizedFlags&^tt.flag {
				t.Errorf("%s(false) disturbed other flags: got %#x, want %#x",
					tt.name, uint32(c.flags), uint32(recognizedFlags&^tt.flag))
			}

			tt.set(c, true)
			if c.flags != recognizedFlags {
				t.Errorf("%s(true) did not restore the prior bitmask: got %#x, want %#x",
					tt.name, uint32(c.flags), uint32(recognizedFlags))
			}
		})
	}
}

func TestToggleRestoresPriorState(t *testing.T) {
	c := Default().
		SetRTSAfterSend(true).
		SetDelayBeforeSendMs(5)
	before := *c

	c.SetRXDuringTX(true).SetRXDuringTX(false)

	if *c != before {
		t.Errorf("toggle pair changed the config: got %+v, want %+v", *c, before)
	}
}

func TestSetterOrderIndependence(t *testing.T) {
	a := New().SetEnabled(true).SetRTSOnSend(true).SetRXDuringTX(true)
	b := New().SetRXDuringTX(true).SetRTSOnSend(true).SetEnabled(true)

	if a.flags != b.flags {
		t.Errorf("flag composition depends on call order: %#x vs %#x",
			uint32(a.flags), uint32(b.flags))
	}
}

func TestDelaysAreIndependent(t *testing.T) {
	c := New().SetDelayBeforeSendMs(10)
	if c.DelayAfterSendMs() != 0 {
		t.Errorf("SetDelayBeforeSendMs changed the after-send delay to %d", c.DelayAfterSendMs())
	}

	c.SetDelayAfterSendMs(20)
	if c.DelayBeforeSendMs() != 10 {
		t.Errorf("SetDelayAfterSendMs changed the before-send delay to %d", c.DelayBeforeSendMs())
	}
	if c.DelayAfterSendMs() != 20 {
		t.Errorf("DelayAfterSendMs = %d, want 20", c.DelayAfterSendMs())
	}
}

func TestSetterChaining(t *testing.T) {
	c := New()
	if c.SetEnabled(true) != c || c.SetDelayBeforeSendMs(1) != c {
		t.Error("setters do not return the receiver")
	}
}
