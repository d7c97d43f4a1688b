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

// disableCmd represents the disable command
var disableCmd = &cobra.Command{
	Use:   "disable <port>",
	Short: "Disable RS485 line-driver control",
	Long: `Disable RS485 line-driver control for the specified serial port.

The driver keeps the remaining fields but ignores them until RS485 is
enabled again.

Examples:
  rs485ctl disable /dev/ttyS0
  rs485ctl disable /dev/ttyUSB0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		f, err := openPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		err = rs485.UpdateConfig(f, func(c *rs485.Config) {
			c.SetEnabled(false)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating RS485 configuration: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("RS485 disabled on %s\n", portPath)
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)
}
