package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions

	// JavaScript emits the plan as a console snippet instead of text.
	JavaScript bool

	// Record appends the plan's steps to the progress journal.
	Record bool
}

// getResult is the JSON shape of a resolved plan.
type getResult struct {
	Element  catalog.ElementID `json:"element"`
	Name     string            `json:"name"`
	Acquired bool              `json:"acquired"`
	Steps    []stepView        `json:"steps,omitempty"`
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <element>",
		Short: "Compute a crafting path for one element",
		Long: `Compute an ordered list of combinations that crafts an element,
starting from the base elements plus any recorded progress.

Example:
  alembic get brick
  alembic get "fresh water" --javascript`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JavaScript, "javascript", false, "emit the plan as a browser console snippet")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "append the plan to the progress journal")

	return cmd
}

func runGet(opts *GetOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx := cmd.Context()

	cat, err := openCatalog(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	el, err := lookupElement(formatter, cat, name)
	if err != nil {
		return err
	}

	r := resolver.New(cat.Graph())
	if _, err := seedFromHistory(ctx, opts.RootOptions, formatter, cat, r); err != nil {
		return err
	}

	plan, err := r.Resolve(el.ID)
	if err != nil {
		message := fmt.Sprintf("no recipe chain reaches the %s", el.Name)
		_ = formatter.Error(ErrCodeUnreachable, message, nil)
		return NewExitError(ExitFailure, message)
	}

	if opts.Record && len(plan) > 0 {
		if err := recordPlan(ctx, opts.RootOptions, formatter, plan); err != nil {
			return err
		}
	}

	if opts.JavaScript {
		writeScript(formatter.Writer, plan)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(getResult{
			Element:  el.ID,
			Name:     el.Name,
			Acquired: len(plan) == 0,
			Steps:    stepViews(plan),
		})
	}

	if len(plan) == 0 {
		fmt.Fprintf(formatter.Writer, "You already have the %s in your inventory\n", el.Name)
		return nil
	}
	fmt.Fprintf(formatter.Writer, "To get the %s, you must combine:\n", el.Name)
	writeSteps(formatter.Writer, cat, plan)
	return nil
}
