package main

import (
	"fmt"

	"github.com/fwojciec/pinpoint"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	result, err := deps.Annotator.Annotate(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinpoint.ErrorMessage(err))
		return err
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintf(deps.Stdout, "%s\n", result.Summary)

	if len(result.References) == 0 {
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nReferences (%d/%d resolved):\n", result.Resolved(), len(result.References))
	for i, ref := range result.References {
		if ref.Match != nil {
			fmt.Fprintf(deps.Stdout, "  [%d] %q -> <%s> score=%.2f\n",
				i+1, ref.Text, ref.Match.Element.TagName(), ref.Match.Score)
		} else {
			fmt.Fprintf(deps.Stdout, "  [%d] %q -> no match\n", i+1, ref.Text)
		}
	}

	return nil
}
