package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/scanmark/internal/client/api"
	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// stubInputs replaces the interactive input seams. Text prompts are
// answered from the map, keyed by prompt text.
func stubInputs(t *testing.T, answers map[string]string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		return answers[prompt], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLogin_Success(t *testing.T) {
	stubInputs(t, map[string]string{"Enter email": "alice@example.org"}, "secret123")

	auth := &fakeAuthSvc{LoginSess: teacherSession()}
	a, out := newTestApp(&fakeAPI{HealthRet: &models.Health{Status: "healthy"}}, auth, &fakeUploadSvc{})

	require.NoError(t, a.Login(context.Background()))

	require.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "logged in as alice")
	// login lands on a loaded dashboard
	assert.Equal(t, SectionDashboard, a.view.Active())
	assert.Contains(t, out.String(), "Submissions:")
}

func TestLogin_Failure(t *testing.T) {
	stubInputs(t, map[string]string{"Enter email": "alice@example.org"}, "bad")

	auth := &fakeAuthSvc{LoginErr: &api.Error{Status: 401, Message: "Invalid credentials"}}
	a, out := newTestApp(&fakeAPI{}, auth, &fakeUploadSvc{})

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestRegister_Success(t *testing.T) {
	stubInputs(t, map[string]string{
		"Choose a username":         "bob",
		"Enter email":               "bob@example.org",
		"Role (teacher or student)": "student",
	}, "supersecret")

	auth := &fakeAuthSvc{}
	a, out := newTestApp(&fakeAPI{}, auth, &fakeUploadSvc{})

	require.NoError(t, a.Register(context.Background()))

	require.NotNil(t, auth.RegIn)
	assert.Equal(t, "bob", auth.RegIn.Username)
	assert.Equal(t, "bob@example.org", auth.RegIn.Email)
	assert.Equal(t, models.RoleStudent, auth.RegIn.Role)
	assert.Equal(t, "supersecret", auth.RegIn.Password)

	// registration never authenticates
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "account created")
}

func TestLogout(t *testing.T) {
	auth := &fakeAuthSvc{}
	a, out := newTestApp(&fakeAPI{}, auth, &fakeUploadSvc{})
	a.session = teacherSession()
	a.view.Activate(SectionEvaluations)

	require.NoError(t, a.Logout(context.Background()))

	assert.True(t, auth.LogoutCalled)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, SectionDashboard, a.view.Active())
	assert.Contains(t, out.String(), "logged out")
}
