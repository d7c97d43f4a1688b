package rs485

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// ttyPattern matches the platform serial device names worth offering for
// RS485 configuration: USB adapters, CDC/ACM devices, standard UARTs, and
// the common SoC-specific ports. Virtual consoles and pseudo-terminals are
// deliberately absent.
var ttyPattern = regexp.MustCompile(`^tty(USB|ACM|AMA|S|SAC|THS|mxc|O)\d+$`)

// ListPorts returns the serial devices present under /dev, sorted by name.
// Presence in the list does not imply the driver supports RS485; probe with
// Load to find out.
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, entry := range entries {
		name := entry.Name()
		if !ttyPattern.MatchString(name) {
			continue
		}
		ports = append(ports, filepath.Join("/dev", name))
	}

	sort.Strings(ports)
	return ports, nil
}
