package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// Evaluations switches to the evaluations section and lists evaluations,
// newest first. A limit of 0 lists everything.
func (a *App) Evaluations(ctx context.Context, limit int) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}
	a.view.Activate(SectionEvaluations)

	evals, err := a.api.Evaluations(ctx, limit)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprint(a.out, view.RenderEvaluationsTable(evals))
	return nil
}

// Evaluate requests grading of a submission against a rubric and surfaces
// the resulting score and plagiarism verdict.
func (a *App) Evaluate(ctx context.Context, submissionID, rubricID string) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}

	res, err := a.api.Evaluate(ctx, submissionID, rubricID)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.notify("evaluation %s created", res.EvaluationID)
	if res.PlagiarismResult.IsPlagiarized {
		fmt.Fprintf(a.out, "Plagiarism FLAGGED (%.0f%% similarity)\n",
			res.PlagiarismResult.SimilarityPercentage)
	}
	if res.Message != "" {
		fmt.Fprintln(a.out, res.Message)
	}
	return nil
}
