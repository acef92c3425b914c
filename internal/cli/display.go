package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
)

// stepView is one combination in JSON output.
type stepView struct {
	First  catalog.ElementID `json:"first"`
	Second catalog.ElementID `json:"second"`
	Result catalog.ElementID `json:"result"`
}

func stepViews(plan resolver.Plan) []stepView {
	out := make([]stepView, len(plan))
	for i, s := range plan {
		out[i] = stepView{First: s.First, Second: s.Second, Result: s.Result}
	}
	return out
}

// elementName resolves an id to its display name, falling back to the id
// itself for anything the catalog does not know.
func elementName(cat *catalog.Catalog, id catalog.ElementID) string {
	if el := cat.Element(id); el != nil {
		return el.Name
	}
	return string(id)
}

// writeSteps prints a plan as the human-readable combination list:
//
//	- Earth + Water (which gives the Mud)
func writeSteps(w io.Writer, cat *catalog.Catalog, plan resolver.Plan) {
	for _, step := range plan {
		fmt.Fprintf(w, "- %s + %s (which gives the %s)\n",
			elementName(cat, step.First),
			elementName(cat, step.Second),
			elementName(cat, step.Result))
	}
}

// writeScript prints a plan as a JavaScript snippet that replays the
// combinations into the game's localStorage history. Pasting it into the
// browser console and reloading leaves the game in the plan's end state.
func writeScript(w io.Writer, plan resolver.Plan) {
	if len(plan) == 0 {
		return
	}
	fmt.Fprintln(w, `localStorage.setItem("stats", '{"firstLaunch":0,"sessionsCount":1}');`)
	fmt.Fprintln(w, `localStorage.setItem("tutorials", '{"shownText":["final","exhausted"]}');`)
	fmt.Fprintln(w, `var game_history = JSON.parse(localStorage.getItem("history")) || [];`)
	for _, step := range plan {
		fmt.Fprintf(w, "game_history.push([%s, %s, 0]);\n", step.First, step.Second)
	}
	fmt.Fprintln(w, `localStorage.setItem("history", JSON.stringify(game_history));`)
}

// lookupElement resolves a name or id to an element, emitting the unknown
// element error (with suggestions) when there is no match.
func lookupElement(formatter *OutputFormatter, cat *catalog.Catalog, name string) (*catalog.Element, error) {
	el := cat.ByName(name)
	if el != nil {
		return el, nil
	}

	message := fmt.Sprintf("unknown element %q", name)
	suggestions := cat.Suggest(name, 3)
	if len(suggestions) > 0 {
		message = fmt.Sprintf("%s (did you mean: %s?)", message, strings.Join(suggestions, ", "))
	}
	_ = formatter.Error(ErrCodeUnknownElement, message, suggestions)
	return nil, NewExitError(ExitFailure, message)
}
