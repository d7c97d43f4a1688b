/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	rs485 "github.com/allbin/go-rs485"
	"github.com/allbin/go-rs485/internal/tty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// echoCmd represents the echo command
var echoCmd = &cobra.Command{
	Use:   "echo <port>",
	Short: "Run a half-duplex RS485 echo loop",
	Long: `Open the port at the given baud rate (8N1), enable RS485 with the
drive-enable signal released during transmission and asserted after it,
then echo every received byte back onto the bus.

Useful for verifying transceiver wiring and RTS polarity from another bus
node. Press Ctrl+C to exit.

Examples:
  rs485ctl echo /dev/ttyS0
  rs485ctl echo /dev/ttyO4 --baud 115200

The baud rate can also be set through the config file or the BAUD
environment variable.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]
		baud := viper.GetInt("baud")

		port, err := tty.Open(portPath, tty.WithBaudRate(baud))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()
		fmt.Printf("Opened %s at %d baud\n", portPath, baud)

		cfg := rs485.Default().
			SetRTSOnSend(false).
			SetRTSAfterSend(true)
		if err := rs485.SetConfig(port, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying RS485 configuration: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Press Ctrl+C to exit")

		buf := make([]byte, 32)
		for {
			n, err := port.Read(buf)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading from %s: %v\n", portPath, err)
				os.Exit(1)
			}
			if n == 0 {
				continue
			}

			fmt.Printf("Read bytes: % X text: %q\n", buf[:n], buf[:n])
			if _, err := port.Write(buf[:n]); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", portPath, err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(echoCmd)

	echoCmd.Flags().IntP("baud", "b", 115200, "Baud rate")
	viper.BindPFlag("baud", echoCmd.Flags().Lookup("baud"))
}
