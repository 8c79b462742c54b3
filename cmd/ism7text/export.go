package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ism7tools/ism7text/internal/texttable"
)

func newExportCommand(opts *tableOptions) *cobra.Command {
	format := texttable.FormatTable
	command := &cobra.Command{
		Use:   "export",
		Short: "Print the whole dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, err := opts.dictionary(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				if err := format.Set(cfg.Output.Format); err != nil {
					return err
				}
			}
			if err := texttable.Export(cmd.OutOrStdout(), d, format); err != nil {
				return fmt.Errorf("texttable.Export > %w", err)
			}
			return nil
		},
	}
	command.Flags().Var(&format, "format", "output format. Possible values are table and yaml")
	return command
}
