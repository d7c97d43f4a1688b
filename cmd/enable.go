/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	rs485 "github.com/allbin/go-rs485"
	"github.com/spf13/cobra"
)

// enableCmd represents the enable command
var enableCmd = &cobra.Command{
	Use:   "enable <port>",
	Short: "Enable RS485 line-driver control",
	Long: `Enable RS485 line-driver control for the specified serial port.

Settings not passed as flags are left as the driver currently has them.
Which RTS polarity is correct depends on how the transceiver's enable pin
is wired; a common arrangement drives the bus while RTS is low:

  rs485ctl enable /dev/ttyS0 --rts-on-send off --rts-after-send on

Other examples:
  rs485ctl enable /dev/ttyS0
  rs485ctl enable /dev/ttyAMA0 --rx-during-tx on --delay-after 2

Valid states: high, low, on, off, true, false, 1, 0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		muts, err := configMutations(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		f, err := openPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		err = rs485.UpdateConfig(f, func(c *rs485.Config) {
			c.SetEnabled(true)
			for _, m := range muts {
				m(c)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating RS485 configuration: %v\n", err)
			os.Exit(1)
		}

		// Read back what the driver accepted.
		cfg, err := rs485.GetConfig(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not verify configuration: %v\n", err)
			return
		}
		renderConfig(portPath, cfg)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	addRS485Flags(enableCmd)
}
