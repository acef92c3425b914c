package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Catalog is the path to the element catalog: the game's JSON dump or
	// an authored .cue file.
	Catalog string

	// History is the path to the SQLite progress journal.
	History string

	// NoHistory disables progress seeding: plans start from the base
	// elements even when a journal exists.
	NoHistory bool

	// Config is an optional path to a YAML config file. When empty, the
	// default path is tried and silently skipped if absent.
	Config string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the alembic CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "alembic",
		Short: "Alembic - crafting path resolver",
		Long:  "Computes crafting paths and the full recipe book for combination puzzle games.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(opts, cmd); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "littlealchemy2.json", "path to the element catalog (.json dump or .cue)")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "progress.db", "path to the progress journal")
	cmd.PersistentFlags().BoolVar(&opts.NoHistory, "no-history", false, "ignore recorded progress")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewElementsCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewFinishCommand(opts))
	cmd.AddCommand(NewBookCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
