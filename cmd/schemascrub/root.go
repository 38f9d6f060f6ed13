package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/schemascrub/pkg/config"
	"github.com/walteh/schemascrub/pkg/operation"
	"github.com/walteh/schemascrub/pkg/status"
)

var (
	// Flags
	pattern   string
	prefix    string
	encoding  string
	rulesFile string
	debug     bool
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemascrub <input_file> <output_file>",
		Short: "Anonymize database table definitions",
		Long: `schemascrub replaces sensitive column names in a table definition with
sequentially numbered generic placeholders, so schema snippets can be shared
in bug reports, documentation, or support tickets without disclosing column
names.

The tool is syntax-agnostic: it runs one case-insensitive regex substitution
pass over plain text and never parses SQL.`,
		Example: `  # Anonymize with the default pattern and prefix
  schemascrub input.sql output.sql

  # Custom column name pattern
  schemascrub input.sql output.sql --column_name_pattern "ssn|credit_card"

  # Custom placeholder prefix
  schemascrub input.sql output.sql --column_prefix "renamed_column_"

  # Explicit input encoding
  schemascrub input.sql output.sql --encoding "latin1"

  # Attempt automatic encoding detection
  schemascrub input.sql output.sql --encoding "auto"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return errors.Errorf("%w: %w", operation.ErrConfiguration, err)
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are parsed by now, so the log level is known
			setupLogging()
		},
		RunE:          runScrub,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&pattern, "column_name_pattern", config.DefaultPattern, "regex pattern identifying sensitive column names")
	cmd.Flags().StringVar(&prefix, "column_prefix", config.DefaultPrefix, "prefix for anonymized column names")
	cmd.Flags().StringVar(&encoding, "encoding", config.DefaultEncoding, "character encoding of the input file, or 'auto' to detect")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "optional rules file (yaml, json, or hcl)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// runScrub builds the run configuration and executes the pipeline
func runScrub(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	cfg := config.New(args[0], args[1])

	// Rules file first, explicit flags second, so flags always win
	if rulesFile != "" {
		rules, err := config.LoadRules(rulesFile)
		if err != nil {
			return errors.Errorf("%w: %w", operation.ErrConfiguration, err)
		}
		cfg.ApplyRules(rules)
	}
	if cmd.Flags().Changed("column_name_pattern") {
		cfg.Pattern = pattern
	}
	if cmd.Flags().Changed("column_prefix") {
		cfg.Prefix = prefix
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = encoding
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("%w: %w", operation.ErrConfiguration, err)
	}

	op := operation.NewScrubOperation(cfg)
	runner := operation.NewRunner(logger)
	if err := runner.Run(ctx, op); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), status.FormatSummary(status.Summary{
		InputFile:    cfg.InputFile,
		OutputFile:   cfg.OutputFile,
		Encoding:     op.Charset(),
		Replacements: op.Result().ReplacementCount,
	}))

	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
