package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xebef/go-rfiddb/listfile"
	"github.com/0xebef/go-rfiddb/uploader"
)

var uploadRetries int

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload the identifier list to the device",
	Long: `Upload the identifier list to the device as one transaction:
protocol check, count declaration, then every chunk in order. A failed
upload leaves nothing usable on the device and must be rerun.

Examples:
  rfidctl upload                      # upload the configured data_file
  rfidctl upload badges.txt           # upload a specific list file
  rfidctl upload --retries 2          # re-attempt a failed upload twice`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataFile(args)

		list, err := listfile.Parse(path)
		if err != nil {
			return fmt.Errorf("read list %s: %w", path, err)
		}

		port, err := openPort()
		if err != nil {
			return err
		}
		defer func() { _ = port.Close() }()

		up := uploader.New(port,
			uploader.WithResponseTimeout(viper.GetDuration("response_timeout")),
			uploader.WithRetries(uploadRetries),
			uploader.WithLogger(sessionLogger{log: log}),
			uploader.WithProgressCallback(func(p uploader.Progress) {
				if p.Phase == uploader.PhaseSending || p.Phase == uploader.PhaseComplete {
					fmt.Printf("\r[%-14s] %3.0f%% (%d/%d chunks)", p.Phase, p.Percentage,
						p.CurrentChunk, p.TotalChunks)
				}
			}),
		)

		err = up.Upload(cmd.Context(), list.IDs())
		fmt.Println()
		if err != nil {
			return err
		}

		log.Infof("uploaded %d identifiers from %s", list.Len(), path)
		return nil
	},
}

func init() {
	uploadCmd.Flags().IntVar(&uploadRetries, "retries", 0,
		"times to restart a failed upload from scratch")
	rootCmd.AddCommand(uploadCmd)
}
