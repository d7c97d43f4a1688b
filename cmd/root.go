/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rs485ctl",
	Short: "Inspect and configure RS485 line-driver settings on serial ports",
	Long: `rs485ctl reads and writes the kernel's RS485 control block for serial
devices whose drivers support it.

On RS485 buses a transceiver chip must be switched between driving and
receiving, usually via the UART's RTS line. The kernel can toggle that
line automatically around each transmission; this tool configures when
and with which polarity it does so.

Examples:
  rs485ctl list
  rs485ctl show /dev/ttyS0
  rs485ctl enable /dev/ttyS0 --rts-after-send on
  rs485ctl set /dev/ttyS0 --delay-after 2
  rs485ctl watch /dev/ttyS0
  rs485ctl echo /dev/ttyS0 --baud 115200`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rs485ctl.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rs485ctl" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rs485ctl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
