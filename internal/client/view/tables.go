package view

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// RenderRubricsTable renders the rubric list as an aligned text table.
func RenderRubricsTable(rubrics []models.Rubric) string {
	if len(rubrics) == 0 {
		return "No rubrics found\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tSUBJECT\tTYPE\tPOINTS\tCREATED")
	for _, r := range rubrics {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%s\n",
			r.ID, r.Name, r.Subject, r.QuestionType, r.TotalPoints, created)
	}
	w.Flush()
	return b.String()
}

// RenderEvaluationsTable renders the evaluation list with the score
// indicator in the first column.
func RenderEvaluationsTable(evals []models.Evaluation) string {
	if len(evals) == 0 {
		return "No evaluations found\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, " \tID\tSCORE\tMAX\tPERCENT\tPLAGIARISM\tREVIEW")
	for _, e := range evals {
		marker := "+"
		switch ScoreIndicator(e.Percentage) {
		case IndicatorCaution:
			marker = "~"
		case IndicatorNegative:
			marker = "-"
		}
		plag := "no"
		if e.PlagiarismResult.IsPlagiarized {
			plag = "FLAGGED"
		}
		review := ""
		if e.NeedsReview {
			review = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f%%\t%s\t%s\n",
			marker, e.ID, e.TotalScore, e.MaxPossibleScore, e.Percentage, plag, review)
	}
	w.Flush()
	return b.String()
}

// RenderRubricDetail renders one rubric with its criteria rows.
func RenderRubricDetail(r *models.Rubric) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s, %s)\n", r.Name, r.Subject, r.QuestionType)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	fmt.Fprintf(&b, "Total points: %.0f\n", r.TotalPoints)

	if len(r.Criteria) > 0 {
		w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CRITERION\tPOINTS\tDESCRIPTION")
		for _, c := range r.Criteria {
			fmt.Fprintf(w, "%s\t%.0f\t%s\n", c.Name, c.Points, c.Description)
		}
		w.Flush()
	}
	return b.String()
}

// SubjectOptions collects the de-duplicated, sorted set of rubric subjects
// for the filter control. Callers rebuild the options from scratch on every
// reload, so stale values never accumulate.
func SubjectOptions(rubrics []models.Rubric) []string {
	seen := make(map[string]struct{}, len(rubrics))
	options := make([]string, 0, len(rubrics))
	for _, r := range rubrics {
		if r.Subject == "" {
			continue
		}
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		options = append(options, r.Subject)
	}
	sort.Strings(options)
	return options
}
