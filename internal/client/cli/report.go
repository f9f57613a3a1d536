package cli

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/report"
	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// subjectAverages folds the evaluation list into the per-subject breakdown
// the doughnut chart consumes. Evaluations without a subject are skipped.
func subjectAverages(evals []models.Evaluation) map[string]models.Subject {
	type acc struct {
		sum float64
		n   int
	}
	sums := make(map[string]*acc)
	for _, e := range evals {
		if e.Subject == "" {
			continue
		}
		a := sums[e.Subject]
		if a == nil {
			a = &acc{}
			sums[e.Subject] = a
		}
		a.sum += e.Percentage
		a.n++
	}

	out := make(map[string]models.Subject, len(sums))
	for s, a := range sums {
		out[s] = models.Subject{TotalEvaluations: a.n, AverageScore: a.sum / float64(a.n)}
	}
	return out
}

// Report exports the current dashboard and evaluation list as a standalone
// HTML file with embedded chart data.
func (a *App) Report(ctx context.Context, path string) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}

	stats := a.gatherStats(ctx)

	scores := make([]float64, len(stats.Evaluations))
	bySubject := subjectAverages(stats.Evaluations)
	for i, e := range stats.Evaluations {
		scores[i] = e.Percentage
	}

	d := &report.Data{
		User:            a.session.User,
		GeneratedAt:     time.Now(),
		Stats:           stats,
		Evaluations:     stats.Evaluations,
		ScoreTrend:      view.ScoreTrendChart(scores),
		SubjectAverages: view.SubjectAveragesChart(bySubject),
	}

	out, err := report.Render(d)
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return a.fail(ctx, err)
	}

	a.notify("report written to %s", path)
	return nil
}
