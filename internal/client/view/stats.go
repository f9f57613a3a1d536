package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// DashboardStats is the aggregated result of the three dashboard fetches.
// A nil slot means its fetch failed and the panel shows a placeholder.
type DashboardStats struct {
	SubmissionCount *int
	RubricCount     *int
	Evaluations     []models.Evaluation
	EvaluationsOK   bool
}

// AverageScore computes the arithmetic mean of the evaluations' percentage
// fields (a missing field deserializes to 0 and counts as 0). The second
// return is false for an empty list: the average of zero elements is
// undefined, not zero.
func AverageScore(evals []models.Evaluation) (float64, bool) {
	if len(evals) == 0 {
		return 0, false
	}
	var sum float64
	for _, e := range evals {
		sum += e.Percentage
	}
	return sum / float64(len(evals)), true
}

// FormatAverageScore renders the mean as a percentage, or the "N/A"
// sentinel for an empty list.
func FormatAverageScore(evals []models.Evaluation) string {
	avg, ok := AverageScore(evals)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", avg)
}

const statPlaceholder = "--"

// RenderDashboardStats renders the stats panel. Failed slots degrade to a
// placeholder without hiding the others.
func RenderDashboardStats(s DashboardStats) string {
	var b strings.Builder

	writeStat := func(label string, n *int) {
		if n == nil {
			fmt.Fprintf(&b, "%-18s %s\n", label+":", statPlaceholder)
			return
		}
		fmt.Fprintf(&b, "%-18s %d\n", label+":", *n)
	}

	writeStat("Submissions", s.SubmissionCount)
	writeStat("Rubrics", s.RubricCount)

	if s.EvaluationsOK {
		fmt.Fprintf(&b, "%-18s %d\n", "Evaluations:", len(s.Evaluations))
		fmt.Fprintf(&b, "%-18s %s\n", "Average score:", FormatAverageScore(s.Evaluations))
	} else {
		fmt.Fprintf(&b, "%-18s %s\n", "Evaluations:", statPlaceholder)
		fmt.Fprintf(&b, "%-18s %s\n", "Average score:", statPlaceholder)
	}

	return b.String()
}

// RenderRecentActivity renders the activity feed of the most recent
// evaluations, newest first as delivered by the backend.
func RenderRecentActivity(evals []models.Evaluation) string {
	if len(evals) == 0 {
		return "No recent activity\n"
	}

	var b strings.Builder
	for _, e := range evals {
		marker := "+"
		switch ScoreIndicator(e.Percentage) {
		case IndicatorCaution:
			marker = "~"
		case IndicatorNegative:
			marker = "-"
		}
		fmt.Fprintf(&b, "[%s] evaluation %s scored %.1f%%", marker, e.ID, e.Percentage)
		if e.NeedsReview {
			b.WriteString(" (needs review)")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
