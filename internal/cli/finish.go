package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
)

// FinishOptions holds flags for the finish command.
type FinishOptions struct {
	*RootOptions
	JavaScript bool
}

// finishResult is the JSON shape of the full-game plan.
type finishResult struct {
	Steps       []stepView          `json:"steps"`
	Unreachable []catalog.ElementID `json:"unreachable,omitempty"`
}

// NewFinishCommand creates the finish command.
func NewFinishCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FinishOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Compute the combinations left to craft every element",
		Long: `Compute one ordered list of combinations that crafts every element
still missing, starting from the base elements plus any recorded progress.
Elements no recipe chain reaches are reported and skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFinish(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JavaScript, "javascript", false, "emit the plan as a browser console snippet")

	return cmd
}

func runFinish(opts *FinishOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cat, err := openCatalog(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	r := resolver.New(cat.Graph())
	if _, err := seedFromHistory(cmd.Context(), opts.RootOptions, formatter, cat, r); err != nil {
		return err
	}

	closure := r.BuildAll()
	plan, unreachable := flattenClosure(cat, closure)

	for _, id := range unreachable {
		formatter.VerboseLog("Unreachable: %s", elementName(cat, id))
	}

	if opts.JavaScript {
		writeScript(formatter.Writer, plan)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(finishResult{
			Steps:       stepViews(plan),
			Unreachable: unreachable,
		})
	}

	if len(plan) == 0 {
		fmt.Fprintln(formatter.Writer, "You already finished the game")
		return nil
	}
	fmt.Fprintln(formatter.Writer, "To finish the game, you must combine:")
	writeSteps(formatter.Writer, cat, plan)
	return nil
}

// flattenClosure concatenates every element's plan into one valid sequence.
//
// Plans are visited in sorted id order and steps deduplicated by produced
// result. A step dropped as a duplicate was produced by an earlier step, so
// every ingredient still precedes its use.
func flattenClosure(cat *catalog.Catalog, closure resolver.Closure) (resolver.Plan, []catalog.ElementID) {
	var plan resolver.Plan
	var unreachable []catalog.ElementID
	produced := make(map[catalog.ElementID]bool)

	for _, id := range cat.IDs() {
		entry := closure[id]
		if entry.Unreachable {
			unreachable = append(unreachable, id)
			continue
		}
		for _, step := range entry.Plan {
			if produced[step.Result] {
				continue
			}
			produced[step.Result] = true
			plan = append(plan, step)
		}
	}

	return plan, unreachable
}
