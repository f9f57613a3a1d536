package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// recentActivityLimit caps the activity feed at the most recent evaluations.
const recentActivityLimit = 10

// Dashboard switches to the dashboard section and loads its three panels:
// aggregate stats, recent activity and system health. Each panel degrades
// independently; one failed fetch never blanks the others.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}
	a.view.Activate(SectionDashboard)

	stats := a.gatherStats(ctx)
	fmt.Fprint(a.out, view.RenderDashboardStats(stats))

	recent, err := a.api.Evaluations(ctx, recentActivityLimit)
	if err != nil {
		a.logger.Warn(ctx, "recent activity fetch failed", "error", err)
		fmt.Fprintln(a.out, "Recent activity unavailable")
	} else {
		fmt.Fprint(a.out, view.RenderRecentActivity(recent))
	}

	_ = a.Health(ctx)
	return nil
}

// gatherStats issues the three stat fetches concurrently and waits for all
// of them to settle. Each goroutine owns one field of the result, and a
// failed fetch simply leaves its slot empty.
func (a *App) gatherStats(ctx context.Context) view.DashboardStats {
	var stats view.DashboardStats
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		subs, err := a.api.Submissions(ctx)
		if err != nil {
			a.logger.Warn(ctx, "submissions fetch failed", "error", err)
			return
		}
		n := len(subs)
		stats.SubmissionCount = &n
	}()

	go func() {
		defer wg.Done()
		rubrics, err := a.api.Rubrics(ctx, "")
		if err != nil {
			a.logger.Warn(ctx, "rubrics fetch failed", "error", err)
			return
		}
		n := len(rubrics)
		stats.RubricCount = &n
	}()

	go func() {
		defer wg.Done()
		evals, err := a.api.Evaluations(ctx, 0)
		if err != nil {
			a.logger.Warn(ctx, "evaluations fetch failed", "error", err)
			return
		}
		stats.Evaluations = evals
		stats.EvaluationsOK = true
	}()

	wg.Wait()
	return stats
}

// Health shows the backend health check. It needs no session; a failed
// call renders the fixed placeholder instead of an error notification.
func (a *App) Health(ctx context.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	h, err := a.api.Health(reqCtx)
	if err != nil {
		a.logger.Warn(ctx, "health check failed", "error", err)
		fmt.Fprint(a.out, view.HealthCheckFailed)
		return err
	}
	fmt.Fprint(a.out, view.RenderHealth(h))
	return nil
}
