package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateResult holds validation results.
type validateResult struct {
	Valid    bool `json:"valid"`
	Elements int  `json:"elements"`
	Recipes  int  `json:"recipes"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog without resolving anything",
		Long: `Load the configured catalog and report referential problems:
duplicate element ids and recipes naming unknown elements. Cycles in the
recipe data are legal and not reported here.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cat, err := openCatalog(opts, formatter)
	if err != nil {
		return err
	}

	recipes := 0
	for _, id := range cat.IDs() {
		recipes += len(cat.Graph().RecipesFor(id))
	}

	if opts.Format == "json" {
		return formatter.Success(validateResult{
			Valid:    true,
			Elements: cat.Len(),
			Recipes:  recipes,
		})
	}

	fmt.Fprintf(formatter.Writer, "Catalog valid: %d element(s), %d recipe(s)\n", cat.Len(), recipes)
	return nil
}
