package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls    []string
	subject  string
	rubricID string
	limit    int
	path     string
	submID   string
	rubID    string
	report   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Rubrics(ctx context.Context, subject string) error {
	f.calls = append(f.calls, "rubrics")
	f.subject = subject
	return nil
}
func (f *fakeExec) RubricDetail(ctx context.Context, id string) error {
	f.calls = append(f.calls, "rubric")
	f.rubricID = id
	return nil
}
func (f *fakeExec) Evaluations(ctx context.Context, limit int) error {
	f.calls = append(f.calls, "evaluations")
	f.limit = limit
	return nil
}
func (f *fakeExec) Analytics(ctx context.Context) error {
	f.calls = append(f.calls, "analytics")
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, path string) error {
	f.calls = append(f.calls, "upload")
	f.path = path
	return nil
}
func (f *fakeExec) Evaluate(ctx context.Context, submissionID, rubricID string) error {
	f.calls = append(f.calls, "evaluate")
	f.submID, f.rubID = submissionID, rubricID
	return nil
}
func (f *fakeExec) Report(ctx context.Context, path string) error {
	f.calls = append(f.calls, "report")
	f.report = path
	return nil
}
func (f *fakeExec) Health(ctx context.Context) error {
	f.calls = append(f.calls, "health")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"dashboard",
		"rubrics math",
		"rubric r1",
		"evaluations 5",
		"analytics",
		"upload sheet.png",
		"evaluate s1 r1",
		"report out.html",
		"health",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "dashboard", "rubrics", "rubric", "evaluations", "analytics", "upload", "evaluate", "report", "health"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	if exec.subject != "math" {
		t.Fatalf("rubrics subject: %q", exec.subject)
	}
	if exec.rubricID != "r1" {
		t.Fatalf("rubric id: %q", exec.rubricID)
	}
	if exec.limit != 5 {
		t.Fatalf("evaluations limit: %d", exec.limit)
	}
	if exec.path != "sheet.png" {
		t.Fatalf("upload path: %q", exec.path)
	}
	if exec.submID != "s1" || exec.rubID != "r1" {
		t.Fatalf("evaluate args: %q %q", exec.submID, exec.rubID)
	}
	if exec.report != "out.html" {
		t.Fatalf("report path: %q", exec.report)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"rubric",
		"upload",
		"evaluate only-one",
		"evaluations zero",
		"quit",
	}, "\n"))
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ReportDefaultPath(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("report\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if exec.report != "scanmark-report.html" {
		t.Fatalf("default report path: %q", exec.report)
	}
}
