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

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <port>",
	Short: "Change individual RS485 settings",
	Long: `Change individual RS485 settings on the specified serial port without
touching the rest of the configuration.

The command reads the current configuration, applies only the flags given,
and writes the result back. Note the read-modify-write is not atomic
against other processes configuring the same port.

Examples:
  rs485ctl set /dev/ttyS0 --enabled on
  rs485ctl set /dev/ttyS0 --rts-on-send low --rts-after-send high
  rs485ctl set /dev/ttyS0 --delay-before 1 --delay-after 2

Valid states: high, low, on, off, true, false, 1, 0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		muts, err := configMutations(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(muts) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no settings given, nothing to change")
			os.Exit(1)
		}

		f, err := openPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		err = rs485.UpdateConfig(f, func(c *rs485.Config) {
			for _, m := range muts {
				m(c)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating RS485 configuration: %v\n", err)
			os.Exit(1)
		}

		cfg, err := rs485.GetConfig(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not verify configuration: %v\n", err)
			return
		}
		renderConfig(portPath, cfg)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().String("enabled", "", "RS485 line-driver control active")
	addRS485Flags(setCmd)
}
