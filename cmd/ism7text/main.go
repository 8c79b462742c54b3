package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	opts := &tableOptions{}

	rootCommand := &cobra.Command{
		Use:           "ism7text",
		Short:         "Translate ISM7 device and parameter labels using a localization text table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.StringVar(&opts.file, "file", "", "text table XML file")
	flags.Var(&opts.targetLanguage, "language", "target language code, e.g. ENU")
	flags.Var(&opts.originalLanguage, "original-language", "original language code (default DEU)")
	flags.StringVar(&opts.includeFile, "include-file", "", "only keep entries whose File contains this substring")

	rootCommand.AddCommand(
		newLookupCommand(opts),
		newTranslateCommand(opts),
		newExportCommand(opts),
		newValidateCommand(opts),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
