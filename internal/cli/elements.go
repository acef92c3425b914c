package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/alembic/internal/catalog"
)

// elementView is the JSON shape of one element in `elements` output.
type elementView struct {
	ID        catalog.ElementID   `json:"id"`
	Name      string              `json:"name"`
	Base      bool                `json:"base,omitempty"`
	Final     bool                `json:"final,omitempty"`
	Hidden    bool                `json:"hidden,omitempty"`
	Recipes   [][2]string         `json:"recipes,omitempty"`
	CanCreate []string            `json:"can_create,omitempty"`
}

// NewElementsCommand creates the elements command.
func NewElementsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements [element]",
		Short: "Display one element or the whole catalog",
		Long: `Display an element's recipes and what it can create.

With no argument, every element of the catalog is displayed in id order.
The argument matches an element id first, then a display name
(case-insensitively).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runElements(rootOpts, name, cmd)
		},
	}

	return cmd
}

func runElements(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cat, err := openCatalog(opts, formatter)
	if err != nil {
		return err
	}

	var elements []*catalog.Element
	if name == "" {
		elements = cat.Elements()
	} else {
		el, err := lookupElement(formatter, cat, name)
		if err != nil {
			return err
		}
		elements = []*catalog.Element{el}
	}

	if opts.Format == "json" {
		views := make([]elementView, 0, len(elements))
		for _, el := range elements {
			views = append(views, viewElement(cat, el))
		}
		return formatter.Success(views)
	}

	for _, el := range elements {
		writeElement(formatter, cat, el)
	}
	return nil
}

func viewElement(cat *catalog.Catalog, el *catalog.Element) elementView {
	view := elementView{
		ID:     el.ID,
		Name:   el.Name,
		Base:   el.Base,
		Final:  el.Final,
		Hidden: el.Hidden,
	}
	for _, r := range cat.Graph().RecipesFor(el.ID) {
		view.Recipes = append(view.Recipes, [2]string{string(r.First), string(r.Second)})
	}
	for _, id := range canCreate(cat, el.ID) {
		view.CanCreate = append(view.CanCreate, elementName(cat, id))
	}
	return view
}

func writeElement(formatter *OutputFormatter, cat *catalog.Catalog, el *catalog.Element) {
	w := formatter.Writer
	fmt.Fprintf(w, "Element #%s: %s\n", el.ID, el.Name)
	if el.Base {
		fmt.Fprintln(w, "Is a base element (is present at the start)")
	}
	if el.Final {
		fmt.Fprintln(w, "Is a final element (can't be mixed with other items)")
	}
	if el.Hidden {
		fmt.Fprintln(w, "Is a hidden element (this property seems to be unused)")
	}
	for _, r := range cat.Graph().RecipesFor(el.ID) {
		fmt.Fprintf(w, "= %s + %s\n", elementName(cat, r.First), elementName(cat, r.Second))
	}
	if created := canCreate(cat, el.ID); len(created) > 0 {
		fmt.Fprintln(w, "Can create:")
		for _, id := range created {
			fmt.Fprintf(w, "- %s\n", elementName(cat, id))
		}
	}
	fmt.Fprintln(w)
}

// canCreate returns the distinct elements id helps produce, in recipe
// registration order.
func canCreate(cat *catalog.Catalog, id catalog.ElementID) []catalog.ElementID {
	var out []catalog.ElementID
	seen := make(map[catalog.ElementID]bool)
	for _, r := range cat.Graph().UsedIn(id) {
		if !seen[r.Result] {
			seen[r.Result] = true
			out = append(out, r.Result)
		}
	}
	return out
}
