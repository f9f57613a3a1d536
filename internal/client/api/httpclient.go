package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/common"
)

// HTTPClient is the concrete Client talking JSON over HTTP.
// The bearer token is kept as client state and attached to every request
// once a session exists.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// NewHTTPClient constructs a client for the API rooted at baseURL
// (including the /api prefix). A nil httpc falls back to a default client.
func NewHTTPClient(baseURL string, httpc *http.Client) *HTTPClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (c *HTTPClient) SetToken(token string) { c.token = token }
func (c *HTTPClient) ClearToken()           { c.token = "" }

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// doJSON executes req and decodes a 2xx JSON body into out (which may be
// nil). Transport failures and non-2xx statuses are mapped to *Error values
// carrying the right sentinel.
func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &Error{Message: "request timed out", wrapped: ErrUnavailable}
		}
		return &Error{Message: "server unreachable", wrapped: ErrUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the backend's error message from a non-2xx response.
// The backend answers with {"error": "..."} (or {"message": "..."} on auth
// middleware rejections); an unparseable body degrades to a generic
// status-derived message.
func decodeError(resp *http.Response) error {
	e := &Error{Status: resp.StatusCode}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		e.wrapped = ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		e.wrapped = common.ErrNotFound
	case resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout:
		e.wrapped = ErrUnavailable
	case resp.StatusCode >= 500:
		e.wrapped = common.ErrInternal
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			e.Message = body.Error
		} else if body.Message != "" {
			e.Message = body.Message
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("request failed: %s", resp.Status)
	}
	return e
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	in := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.postJSON(ctx, "/auth/login", in, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) Register(ctx context.Context, in *models.RegisterInput) error {
	return c.postJSON(ctx, "/auth/register", in, nil)
}

func (c *HTTPClient) Upload(ctx context.Context, ur *UploadRequest) (*models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, ur.FileName))
	h.Set("Content-Type", ur.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, ur.Body); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if ur.Question != "" {
		if err := mw.WriteField("question", ur.Question); err != nil {
			return nil, err
		}
	}
	if ur.AssignmentID != "" {
		if err := mw.WriteField("assignment_id", ur.AssignmentID); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	if ur.RequestID != "" {
		req.Header.Set("X-Request-ID", ur.RequestID)
	}

	var out models.UploadResult
	if err := c.doJSON(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Submissions(ctx context.Context) ([]models.Submission, error) {
	var resp struct {
		Submissions []models.Submission `json:"submissions"`
		Count       int                 `json:"count"`
	}
	if err := c.getJSON(ctx, "/submissions", &resp); err != nil {
		return nil, err
	}
	return resp.Submissions, nil
}

func (c *HTTPClient) Evaluations(ctx context.Context, limit int) ([]models.Evaluation, error) {
	path := "/evaluations"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp struct {
		Evaluations []models.Evaluation `json:"evaluations"`
		Count       int                 `json:"count"`
	}
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Evaluations, nil
}

func (c *HTTPClient) Rubrics(ctx context.Context, subject string) ([]models.Rubric, error) {
	path := "/rubrics"
	if subject != "" {
		path += "?subject=" + url.QueryEscape(subject)
	}
	var resp struct {
		Rubrics []models.Rubric `json:"rubrics"`
		Count   int             `json:"count"`
	}
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Rubrics, nil
}

func (c *HTTPClient) Rubric(ctx context.Context, id string) (*models.Rubric, error) {
	var out models.Rubric
	if err := c.getJSON(ctx, "/rubrics/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Evaluate(ctx context.Context, submissionID, rubricID string) (*models.EvaluateResult, error) {
	in := map[string]string{"submission_id": submissionID, "rubric_id": rubricID}
	var out models.EvaluateResult
	if err := c.postJSON(ctx, "/evaluate", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	var out models.Health
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) StudentAnalytics(ctx context.Context, studentID string) (*models.StudentAnalytics, error) {
	var out models.StudentAnalytics
	if err := c.getJSON(ctx, "/analytics/student/"+url.PathEscape(studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ClassAnalytics(ctx context.Context) (*models.ClassAnalytics, error) {
	var out models.ClassAnalytics
	if err := c.getJSON(ctx, "/analytics/class", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
