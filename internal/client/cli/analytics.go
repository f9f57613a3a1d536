package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// Analytics switches to the analytics section and loads the payload for the
// current role: students see their own metrics and chart series, everyone
// else sees the class-wide aggregate.
func (a *App) Analytics(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}
	a.view.Activate(SectionAnalytics)

	if a.session.User.Role == models.RoleStudent {
		return a.studentAnalytics(ctx)
	}
	return a.classAnalytics(ctx)
}

func (a *App) studentAnalytics(ctx context.Context) error {
	sa, err := a.api.StudentAnalytics(ctx, a.session.User.ID)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprint(a.out, view.RenderStudentAnalytics(sa))

	// Chart payloads in the {labels, datasets} shape the charting library
	// consumes; the controller only shapes data, it never draws.
	a.printChart("Score trend", view.ScoreTrendChart(sa.RecentTrend))
	a.printChart("Subject averages", view.SubjectAveragesChart(sa.PerformanceBySubject))
	return nil
}

func (a *App) classAnalytics(ctx context.Context) error {
	ca, err := a.api.ClassAnalytics(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprint(a.out, view.RenderClassAnalytics(ca))
	return nil
}

func (a *App) printChart(title string, c view.ChartData) {
	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "%s: %s\n", title, data)
}
