/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	rs485 "github.com/allbin/go-rs485"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// openPort opens a serial device for configuration without touching its
// termios state. The returned *os.File satisfies rs485.Device.
func openPort(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("error opening port: %v", err)
	}
	return f, nil
}

func parseSignalState(state string) (bool, error) {
	switch strings.ToLower(state) {
	case "high", "on", "true", "1":
		return true, nil
	case "low", "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid state: %s (valid: high, low, on, off, true, false, 1, 0)", state)
	}
}

func formatSignalState(state bool) string {
	if state {
		return "on"
	}
	return "off"
}

// addRS485Flags registers the option flags shared by the enable and set
// commands. State flags default to empty so "not passed" is distinguishable
// from an explicit value.
func addRS485Flags(cmd *cobra.Command) {
	cmd.Flags().String("rts-on-send", "", "drive-enable level while transmitting")
	cmd.Flags().String("rts-after-send", "", "drive-enable level after transmission")
	cmd.Flags().String("rx-during-tx", "", "keep receiver enabled while transmitting")
	cmd.Flags().Uint32("delay-before", 0, "enable hold time before transmission (ms)")
	cmd.Flags().Uint32("delay-after", 0, "enable hold time after transmission (ms)")
}

type mutation func(*rs485.Config)

// configMutations parses the RS485 option flags given on the command line
// into mutations, validating them before any device I/O happens. Flags the
// user did not pass (or that the command does not register) contribute
// nothing.
func configMutations(cmd *cobra.Command) ([]mutation, error) {
	var muts []mutation

	stateFlags := []struct {
		name string
		set  func(*rs485.Config, bool) *rs485.Config
	}{
		{"enabled", (*rs485.Config).SetEnabled},
		{"rts-on-send", (*rs485.Config).SetRTSOnSend},
		{"rts-after-send", (*rs485.Config).SetRTSAfterSend},
		{"rx-during-tx", (*rs485.Config).SetRXDuringTX},
	}
	for _, sf := range stateFlags {
		if !cmd.Flags().Changed(sf.name) {
			continue
		}
		raw, _ := cmd.Flags().GetString(sf.name)
		state, err := parseSignalState(raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %v", sf.name, err)
		}
		set := sf.set
		muts = append(muts, func(c *rs485.Config) { set(c, state) })
	}

	delayFlags := []struct {
		name string
		set  func(*rs485.Config, uint32) *rs485.Config
	}{
		{"delay-before", (*rs485.Config).SetDelayBeforeSendMs},
		{"delay-after", (*rs485.Config).SetDelayAfterSendMs},
	}
	for _, df := range delayFlags {
		if !cmd.Flags().Changed(df.name) {
			continue
		}
		ms, _ := cmd.Flags().GetUint32(df.name)
		set := df.set
		muts = append(muts, func(c *rs485.Config) { set(c, ms) })
	}

	return muts, nil
}
