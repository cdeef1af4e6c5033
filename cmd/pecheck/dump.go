package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"
)

// NewDumpCmd creates the dump command.
func NewDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the loaded PE database as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closer, err := loadStore(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closer()

			raw, err := store.Current().MarshalJSON()
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return err
			}
			out.WriteByte('\n')
			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
