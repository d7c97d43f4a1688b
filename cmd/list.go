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

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List the serial ports present on the system.

This command scans /dev for communication-capable serial devices:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*)
- Standard serial ports (ttyS*)
- SoC serial ports (ttyAMA*, ttymxc*, ttyO*, ttySAC*, ttyTHS*)

Virtual terminals and pseudo-terminals are excluded. With --probe, each
port is opened and queried to see whether its driver supports RS485.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := rs485.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		probe, _ := cmd.Flags().GetBool("probe")
		if !probe {
			for _, port := range ports {
				fmt.Println(port)
			}
			return
		}

		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240"))

		fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %s", "Port", "RS485")))
		for _, port := range ports {
			fmt.Printf("%-20s %s\n", port, probePort(port))
		}
	},
}

// probePort reports whether the port's driver answers the RS485 get ioctl.
func probePort(path string) string {
	f, err := openPort(path)
	if err != nil {
		return fmt.Sprintf("unavailable (%v)", err)
	}
	defer f.Close()

	cfg, err := rs485.GetConfig(f)
	if err != nil {
		return "unsupported"
	}
	if cfg.Enabled() {
		return "supported (enabled)"
	}
	return "supported"
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("probe", "p", false, "Query each port for RS485 driver support")
}
