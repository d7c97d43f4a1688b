/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	rs485 "github.com/allbin/go-rs485"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <port>",
	Short: "Display the current RS485 configuration",
	Long: `Display the RS485 line-driver configuration the kernel currently holds
for the specified serial port.

Examples:
  rs485ctl show /dev/ttyS0
  rs485ctl show /dev/ttyUSB0

Field meanings:
  enabled        - RS485 control active; when off all other fields are ignored
  rts-on-send    - drive-enable level while transmitting
  rts-after-send - drive-enable level after transmission completes
  rx-during-tx   - receiver stays enabled while transmitting (local echo)
  delay-before   - ms the enable signal is held before transmission
  delay-after    - ms the enable signal is held after transmission`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		f, err := openPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		cfg, err := rs485.GetConfig(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading RS485 configuration: %v\n", err)
			os.Exit(1)
		}

		renderConfig(portPath, cfg)
	},
}

var (
	showTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240"))

	showOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	showOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

func renderConfig(portPath string, cfg *rs485.Config) {
	fmt.Println(showTitleStyle.Render(fmt.Sprintf("RS485 configuration for %s", portPath)))

	rows := []struct {
		label string
		state bool
	}{
		{"enabled", cfg.Enabled()},
		{"rts-on-send", cfg.RTSOnSend()},
		{"rts-after-send", cfg.RTSAfterSend()},
		{"rx-during-tx", cfg.RXDuringTX()},
	}

	for _, row := range rows {
		state := formatSignalState(row.state)
		if row.state {
			state = showOnStyle.Render(state)
		} else {
			state = showOffStyle.Render(state)
		}
		fmt.Printf("  %-15s %s\n", row.label, state)
	}

	fmt.Printf("  %-15s %d ms\n", "delay-before", cfg.DelayBeforeSendMs())
	fmt.Printf("  %-15s %d ms\n", "delay-after", cfg.DelayAfterSendMs())
}

func init() {
	rootCmd.AddCommand(showCmd)
}
