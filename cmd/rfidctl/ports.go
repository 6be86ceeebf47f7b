package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xebef/go-rfiddb/transport/serialport"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports present on this system",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := serialport.List()
		if err != nil {
			return err
		}

		if len(ports) == 0 {
			fmt.Println("no serial ports found")
			return nil
		}

		for _, name := range ports {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
