package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/view"
	"github.com/dmitrijs2005/scanmark/internal/common"
)

func TestDashboard_AllPanels(t *testing.T) {
	fa := &fakeAPI{
		Subs:    []models.Submission{{ID: "s1"}, {ID: "s2"}},
		RubricsRet: []models.Rubric{{ID: "r1"}},
		Evals:   []models.Evaluation{{ID: "e1", Percentage: 80}, {ID: "e2", Percentage: 60}},
		HealthRet: &models.Health{
			Status:   "healthy",
			Services: map[string]string{"database": "connected", "ocr_service": "available"},
		},
	}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})
	a.session = teacherSession()

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Submissions:")
	assert.Contains(t, s, "2")
	assert.Contains(t, s, "70.0%") // mean of 80 and 60
	assert.Contains(t, s, "evaluation e1")
	assert.Contains(t, s, "System health: OK")
	assert.NotContains(t, s, "--")

	assert.Equal(t, SectionDashboard, a.view.Active())
	assert.Equal(t, 1, a.view.VisibleCount())
}

func TestDashboard_FaultIsolation(t *testing.T) {
	fa := &fakeAPI{
		SubsErr: errors.New("boom"),
		RubricsRet: []models.Rubric{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}},
		Evals:   []models.Evaluation{{ID: "e1", Percentage: 50}},
		HealthRet: &models.Health{Status: "healthy"},
	}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})
	a.session = teacherSession()

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	// the failed slot degrades, the others render
	assert.Contains(t, s, "--")
	assert.Contains(t, s, "3")
	assert.Contains(t, s, "50.0%")
}

func TestDashboard_EmptyEvaluationsAverage(t *testing.T) {
	fa := &fakeAPI{HealthRet: &models.Health{Status: "healthy"}}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})
	a.session = teacherSession()

	require.NoError(t, a.Dashboard(context.Background()))

	assert.Contains(t, out.String(), "N/A")
}

func TestDashboard_RequiresSession(t *testing.T) {
	fa := &fakeAPI{}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})

	err := a.Dashboard(context.Background())

	require.ErrorIs(t, err, common.ErrNoSession)
	assert.Contains(t, out.String(), "please log in first")
	assert.Zero(t, fa.Calls)
}

func TestHealth_FailureRendersPlaceholder(t *testing.T) {
	fa := &fakeAPI{HealthErr: errors.New("conn refused")}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})

	err := a.Health(context.Background())

	require.Error(t, err)
	assert.True(t, strings.Contains(out.String(), strings.TrimSuffix(view.HealthCheckFailed, "\n")))
}

func TestHealth_DegradedService(t *testing.T) {
	fa := &fakeAPI{HealthRet: &models.Health{
		Status:   "degraded",
		Services: map[string]string{"database": "down", "ocr_service": "available"},
	}}
	a, out := newTestApp(fa, &fakeAuthSvc{}, &fakeUploadSvc{})

	require.NoError(t, a.Health(context.Background()))

	s := out.String()
	assert.Contains(t, s, "System health: DOWN")
	assert.Contains(t, s, "[-] database")
	assert.Contains(t, s, "[+] ocr_service")
}
