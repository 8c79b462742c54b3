package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(opts *tableOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the text table yields entries for the configured languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, err := opts.dictionary(cmd)
			if err != nil {
				return err
			}
			localization := cfg.Localization
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries from %s to %s\n",
				localization.File, d.Len(), localization.OriginalLanguage, localization.TargetLanguage)
			return err
		},
	}
}
