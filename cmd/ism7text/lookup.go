package main

import (
	"bufio"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLookupCommand(opts *tableOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <text>...",
		Short: "Look up the translation of texts in the original language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, err := opts.dictionary(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, text := range args {
				translation, ok := d.Lookup(text)
				if !ok {
					if _, err := fmt.Fprintln(out, color.RedString("%s: no %s translation", text, cfg.Localization.TargetLanguage)); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintln(out, color.GreenString("%s => %s", text, translation)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTranslateCommand(opts *tableOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "Translate labels read line by line from stdin, passing unknown labels through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := opts.dictionary(cmd)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for scanner.Scan() {
				if _, err := fmt.Fprintln(out, d.Translate(scanner.Text())); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read labels: %w", err)
			}
			return nil
		},
	}
}
