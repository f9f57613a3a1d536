package view

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// Dataset and ChartData mirror the structures the external charting
// collaborator (Chart.js in the HTML report) expects; this package only
// shapes payloads into them.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// ScoreTrendChart shapes the recency-ordered score sequence into a line
// chart payload with auto-generated labels "Eval 1".."Eval N".
func ScoreTrendChart(scores []float64) ChartData {
	labels := make([]string, len(scores))
	for i := range scores {
		labels[i] = fmt.Sprintf("Eval %d", i+1)
	}
	return ChartData{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Score", Data: append([]float64(nil), scores...)}},
	}
}

// SubjectAveragesChart shapes the per-subject performance breakdown into a
// doughnut chart payload with subjects sorted for a stable order.
func SubjectAveragesChart(bySubject map[string]models.Subject) ChartData {
	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	data := make([]float64, len(subjects))
	for i, s := range subjects {
		data[i] = bySubject[s].AverageScore
	}
	return ChartData{
		Labels:   subjects,
		Datasets: []Dataset{{Label: "Average score", Data: data}},
	}
}

// RenderStudentAnalytics renders the four scalar metrics of the student view.
func RenderStudentAnalytics(a *models.StudentAnalytics) string {
	return fmt.Sprintf(
		"Evaluations:          %d\nAverage score:        %.1f\nHighest score:        %.1f\nPlagiarism incidents: %d\n",
		a.TotalEvaluations, a.AverageScore, a.HighestScore, a.PlagiarismIncidents,
	)
}

// RenderClassAnalytics renders the class-wide aggregate metrics.
func RenderClassAnalytics(a *models.ClassAnalytics) string {
	return fmt.Sprintf(
		"Evaluations:        %d\nAverage score:      %.1f\nHighest score:      %.1f\nLowest score:       %.1f\nAverage percentage: %.1f%%\n",
		a.TotalEvaluations, a.AverageScore, a.MaxScore, a.MinScore, a.AveragePercentage,
	)
}
