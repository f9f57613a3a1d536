package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// Rubrics switches to the rubrics section and lists rubrics, optionally
// filtered by subject. The subject filter options are rebuilt from scratch
// on every load so removed subjects never linger.
func (a *App) Rubrics(ctx context.Context, subject string) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}
	a.view.Activate(SectionRubrics)

	rubrics, err := a.api.Rubrics(ctx, subject)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprint(a.out, view.RenderRubricsTable(rubrics))

	if subject == "" {
		if options := view.SubjectOptions(rubrics); len(options) > 0 {
			fmt.Fprintf(a.out, "Subjects: %s\n", strings.Join(options, ", "))
		}
	}
	return nil
}

// RubricDetail shows one rubric with its criteria rows.
func (a *App) RubricDetail(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}

	r, err := a.api.Rubric(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprint(a.out, view.RenderRubricDetail(r))
	return nil
}
