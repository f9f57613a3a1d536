// Package report renders a standalone HTML snapshot of the dashboard.
//
// Evaluation feedback arrives as model-produced markdown; it is converted
// with goldmark and sanitized with bluemonday before being embedded, since
// the text ultimately comes from an external service. Chart payloads are
// written as JSON data blocks in the shape Chart.js expects.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// mdRenderer is a goldmark instance for feedback bodies. Raw HTML in the
// markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var sanitizer = bluemonday.UGCPolicy()

// Data is everything one report needs.
type Data struct {
	User            models.User
	GeneratedAt     time.Time
	Stats           view.DashboardStats
	Evaluations     []models.Evaluation
	ScoreTrend      view.ChartData
	SubjectAverages view.ChartData
}

// FeedbackHTML converts one markdown feedback body to sanitized HTML.
func FeedbackHTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render feedback: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

type evaluationRow struct {
	ID         string
	Percentage float64
	Indicator  view.Indicator
	Review     bool
	Feedback   template.HTML
}

type reportPage struct {
	Title           string
	Username        string
	Generated       string
	StatsText       string
	Rows            []evaluationRow
	ScoreTrend      template.JS
	SubjectAverages template.JS
}

// Render produces the complete HTML document.
func Render(d *Data) ([]byte, error) {
	page := reportPage{
		Title:     "ScanMark report",
		Username:  d.User.Username,
		Generated: d.GeneratedAt.Format(time.RFC1123),
		StatsText: view.RenderDashboardStats(d.Stats),
	}

	for _, e := range d.Evaluations {
		fb, err := FeedbackHTML(e.Feedback)
		if err != nil {
			return nil, err
		}
		page.Rows = append(page.Rows, evaluationRow{
			ID:         e.ID,
			Percentage: e.Percentage,
			Indicator:  view.ScoreIndicator(e.Percentage),
			Review:     e.NeedsReview,
			Feedback:   fb,
		})
	}

	trend, err := json.Marshal(d.ScoreTrend)
	if err != nil {
		return nil, fmt.Errorf("encode trend chart: %w", err)
	}
	subjects, err := json.Marshal(d.SubjectAverages)
	if err != nil {
		return nil, fmt.Errorf("encode subject chart: %w", err)
	}
	page.ScoreTrend = template.JS(trend)
	page.SubjectAverages = template.JS(subjects)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
body { font-family: sans-serif; margin: 2rem; }
pre { background: #f4f4f4; padding: 1rem; }
.positive { color: #1a7f37; }
.caution { color: #9a6700; }
.negative { color: #cf222e; }
.feedback { border-left: 3px solid #ddd; padding-left: 1rem; margin: .5rem 0 1.5rem; }
canvas { max-width: 480px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated for {{.Username}} at {{.Generated}}</p>

<h2>Dashboard</h2>
<pre>{{.StatsText}}</pre>

<h2>Charts</h2>
<canvas id="trend"></canvas>
<canvas id="subjects"></canvas>
<script>
new Chart(document.getElementById("trend"), {type: "line", data: {{.ScoreTrend}}});
new Chart(document.getElementById("subjects"), {type: "doughnut", data: {{.SubjectAverages}}});
</script>

<h2>Evaluations</h2>
{{range .Rows}}
<h3 class="{{.Indicator}}">{{.ID}} &mdash; {{printf "%.1f" .Percentage}}%{{if .Review}} (needs review){{end}}</h3>
<div class="feedback">{{.Feedback}}</div>
{{else}}
<p>No evaluations.</p>
{{end}}
</body>
</html>
`))
