package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xebef/go-rfiddb/uploader"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the device answers the protocol handshake",
	Args:  cobra.NoArgs,
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

		if err := up.Ping(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("device on %s answered\n", viper.GetString("port"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
