package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xebef/go-rfiddb/uploader"
)

var readLastCmd = &cobra.Command{
	Use:   "read-last",
	Short: "Read the most recently scanned identifier from the device",
	Long: `Read the most recently scanned identifier from the device.

Useful when registering a new badge: scan it at the lock, then run this
command and paste the printed identifier into the list file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := openPort()
		if err != nil {
			return err
		}
		defer func() { _ = port.Close() }()

		up := uploader.New(port,
			uploader.WithResponseTimeout(viper.GetDuration("response_timeout")),
			uploader.WithLogger(sessionLogger{log: log}),
		)

		id, err := up.ReadLast(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%08X\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readLastCmd)
}
