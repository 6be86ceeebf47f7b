package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xebef/go-rfiddb/listfile"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the stored identifier list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataFile(args)

		list, err := listfile.Parse(path)
		if err != nil {
			return fmt.Errorf("read list %s: %w", path, err)
		}

		for i, e := range list.Entries {
			fmt.Printf("%4d  %08X  %s\n", i+1, e.ID, e.Label)
		}
		fmt.Printf("%d identifiers in %s\n", list.Len(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
