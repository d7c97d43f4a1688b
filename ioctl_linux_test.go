package rs485

import (
	"encoding/binary"
	"errors"
	"os"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

func TestWireLayout(t *testing.T) {
	if size := unsafe.Sizeof(wireConfig{}); size != wireSize {
		t.Fatalf("wireConfig is %d bytes, kernel expects %d", size, wireSize)
	}

	var w wireConfig
	if off := unsafe.Offsetof(w.Flags); off != 0 {
		t.Errorf("Flags offset = %d, want 0", off)
	}
	if off := unsafe.Offsetof(w.DelayRTSBeforeSend); off != 4 {
		t.Errorf("DelayRTSBeforeSend offset = %d, want 4", off)
	}
	if off := unsafe.Offsetof(w.DelayRTSAfterSend); off != 8 {
		t.Errorf("DelayRTSAfterSend offset = %d, want 8", off)
	}
	if off := unsafe.Offsetof(w.Padding); off != 12 {
		t.Errorf("Padding offset = %d, want 12", off)
	}
}

func TestWireEncodingScenario(t *testing.T) {
	// Default profile with RTS held after send: ENABLED | RTS_AFTER_SEND,
	// flag word 5, both delays zero.
	c := Default().
		SetRTSOnSend(false).
		SetRTSAfterSend(true)

	w := c.wire()
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&w)), wireSize)

	if got := binary.NativeEndian.Uint32(buf[0:4]); got != 5 {
		t.Errorf("flag word = %d, want 5", got)
	}
	for i := 4; i < 12; i++ {
		if buf[i] != 0 {
			t.Errorf("delay byte %d = %#x, want 0", i, buf[i])
		}
	}
	for i := 12; i < wireSize; i++ {
		if buf[i] != 0 {
			t.Errorf("padding byte %d = %#x, want 0", i, buf[i])
		}
	}
}

func TestWireRoundTrip(t *testing.T) {
	in := wireConfig{
		Flags:              uint32(FlagEnabled | FlagRTSOnSend),
		DelayRTSBeforeSend: 3,
		DelayRTSAfterSend:  7,
	}

	out := fromWire(in).wire()
	if out != in {
		t.Errorf("round-trip changed the structure: got %+v, want %+v", out, in)
	}
}

func TestWireRoundTripPreservesUnknownBits(t *testing.T) {
	// Newer kernels define flag bits this package does not name (bus
	// termination, address modes). They must survive load -> store.
	const unknown = 1<<5 | 1<<13

	in := wireConfig{
		Flags:   uint32(FlagEnabled) | unknown,
		Padding: [5]uint32{0xdead, 0, 0, 0, 0xbeef},
	}

	c := fromWire(in)
	if !c.Enabled() {
		t.Error("recognized bit lost while splitting the flag word")
	}
	if c.Has(Flag(unknown)) {
		t.Error("unknown bits leaked into the typed flag set")
	}

	// Flipping recognized flags must not disturb the residual.
	c.SetRXDuringTX(true).SetRXDuringTX(false)

	out := c.wire()
	if out.Flags&unknown != unknown {
		t.Errorf("unknown flag bits dropped: got %#x", out.Flags)
	}
	if out.Padding != in.Padding {
		t.Errorf("padding not preserved: got %v, want %v", out.Padding, in.Padding)
	}
}

func TestLoadInvalidDescriptor(t *testing.T) {
	_, err := Load(-1)
	if err == nil {
		t.Fatal("Load(-1) succeeded")
	}
	if !errors.Is(err, unix.EBADF) {
		t.Errorf("Load(-1) error = %v, want EBADF", err)
	}
}

func TestLoadNonSerialDevice(t *testing.T) {
	f, err := os.Open("/dev/null")
	if err != nil {
		t.Fatalf("open /dev/null: %v", err)
	}
	defer f.Close()

	if _, err := GetConfig(f); err == nil {
		t.Error("GetConfig on /dev/null succeeded")
	}
}

func TestUpdateShortCircuitsOnLoadFailure(t *testing.T) {
	called := false
	err := Update(-1, func(*Config) { called = true })

	if err == nil {
		t.Fatal("Update(-1, ...) succeeded")
	}
	if !errors.Is(err, unix.EBADF) {
		t.Errorf("Update(-1, ...) error = %v, want EBADF", err)
	}
	if called {
		t.Error("mutator ran even though the load failed")
	}
}

func TestUpdateConfigShortCircuitsOnLoadFailure(t *testing.T) {
	f, err := os.Open("/dev/null")
	if err != nil {
		t.Fatalf("open /dev/null: %v", err)
	}
	defer f.Close()

	called := false
	if err := UpdateConfig(f, func(*Config) { called = true }); err == nil {
		t.Fatal("UpdateConfig on /dev/null succeeded")
	}
	if called {
		t.Error("mutator ran even though the load failed")
	}
}
