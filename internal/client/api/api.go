// Package api implements the HTTP client for the ScanMark backend: a
// JSON-over-HTTP REST API authenticated with a bearer token. The concrete
// client lives in httpclient.go; this file defines the interface the rest
// of the application depends on.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// UploadRequest describes one multipart upload call. Question and
// AssignmentID are optional form fields; RequestID is attached as an
// X-Request-ID header for server-side correlation.
type UploadRequest struct {
	FileName     string
	ContentType  string
	Body         io.Reader
	Question     string
	AssignmentID string
	RequestID    string
}

// Client defines the backend operations the controller consumes.
//
// Contract:
//   - Login returns the bearer token and user record; the implementation
//     remembers the token and attaches it to subsequent calls.
//   - Register creates an account but does not authenticate.
//   - All methods honor context cancellation/timeouts.
//   - Transport and auth failures map to ErrUnavailable / ErrUnauthorized
//     (matchable with errors.Is); backend error messages are preserved.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, in *models.RegisterInput) error
	SetToken(token string)
	ClearToken()

	Upload(ctx context.Context, req *UploadRequest) (*models.UploadResult, error)
	Submissions(ctx context.Context) ([]models.Submission, error)
	Evaluations(ctx context.Context, limit int) ([]models.Evaluation, error)
	Rubrics(ctx context.Context, subject string) ([]models.Rubric, error)
	Rubric(ctx context.Context, id string) (*models.Rubric, error)
	Evaluate(ctx context.Context, submissionID, rubricID string) (*models.EvaluateResult, error)
	Health(ctx context.Context) (*models.Health, error)
	StudentAnalytics(ctx context.Context, studentID string) (*models.StudentAnalytics, error)
	ClassAnalytics(ctx context.Context) (*models.ClassAnalytics, error)
}
