package tty

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}
	if config.ReadTimeoutTenths != 25 {
		t.Errorf("Expected ReadTimeoutTenths 25, got %d", config.ReadTimeoutTenths)
	}
}

func TestBaudConstant(t *testing.T) {
	tests := []struct {
		rate    int
		want    uint32
		wantErr bool
	}{
		{9600, unix.B9600, false},
		{19200, unix.B19200, false},
		{115200, unix.B115200, false},
		{921600, unix.B921600, false},
		{0, 0, true},
		{1234, 0, true},
		{-9600, 0, true},
	}

	for _, tt := range tests {
		got, err := baudConstant(tt.rate)
		if (err != nil) != tt.wantErr {
			t.Errorf("baudConstant(%d) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("baudConstant(%d) = %#x, want %#x", tt.rate, got, tt.want)
		}
	}
}

func TestWithBaudRate(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(9600)(&config); err != nil {
		t.Errorf("WithBaudRate(9600) failed: %v", err)
	}
	if config.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want 9600", config.BaudRate)
	}

	err := WithBaudRate(1234)(&config)
	if !errors.Is(err, ErrInvalidBaudRate) {
		t.Errorf("WithBaudRate(1234) error = %v, want ErrInvalidBaudRate", err)
	}
	if config.BaudRate != 9600 {
		t.Errorf("failed option changed BaudRate to %d", config.BaudRate)
	}
}

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		tenths  int
		wantErr bool
	}{
		{"0 (non-blocking)", 0, false},
		{"25 (default)", 25, false},
		{"255 (max)", 255, false},
		{"256 (exceeds max)", 256, true},
		{"-1 (negative)", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithReadTimeout(tt.tenths)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%d) error = %v, wantErr %v", tt.tenths, err, tt.wantErr)
			}
			if err == nil && config.ReadTimeoutTenths != tt.tenths {
				t.Errorf("ReadTimeoutTenths = %d, want %d", config.ReadTimeoutTenths, tt.tenths)
			}
		})
	}
}

func TestOpenMissingDevice(t *testing.T) {
	if _, err := Open("/dev/does-not-exist"); err == nil {
		t.Error("Open on a missing device succeeded")
	}
}
