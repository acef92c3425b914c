package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/alembic/internal/book"
	"github.com/roach88/alembic/internal/resolver"
)

// BookOptions holds flags for the book command.
type BookOptions struct {
	*RootOptions
	Output string
}

// NewBookCommand creates the book command.
func NewBookCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BookOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Emit the full recipe book as JSON",
		Long: `Resolve every element of the catalog and emit the recipe book:
one entry per element with its selected recipe chain and the elements it
unlocks. The book always starts from the base elements; recorded progress
does not affect it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the book to a file instead of stdout")

	return cmd
}

func runBook(opts *BookOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cat, err := openCatalog(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	closure := resolver.New(cat.Graph()).BuildAll()
	b := book.Build(cat, closure)
	formatter.VerboseLog("Resolved %d element(s)", cat.Len())

	w := cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			message := fmt.Sprintf("create %s: %v", opts.Output, err)
			_ = formatter.Error(ErrCodeWriteFailed, message, nil)
			return NewExitError(ExitCommandError, message)
		}
		defer f.Close()
		w = f
	}

	if err := b.WriteJSON(w); err != nil {
		message := fmt.Sprintf("write book: %v", err)
		_ = formatter.Error(ErrCodeWriteFailed, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	if opts.Output != "" {
		formatter.VerboseLog("Book written to %s", opts.Output)
	}
	return nil
}
