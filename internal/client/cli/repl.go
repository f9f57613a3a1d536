package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Rubrics(ctx context.Context, subject string) error
	RubricDetail(ctx context.Context, id string) error
	Evaluations(ctx context.Context, limit int) error
	Analytics(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Evaluate(ctx context.Context, submissionID, rubricID string) error
	Report(ctx context.Context, path string) error
	Health(ctx context.Context) error
}

// runREPL is the read-eval-print loop of the client.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - health          — backend health check
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - dashboard       — stats, recent activity and health
//	  - rubrics [subject]        — list rubrics, optionally filtered
//	  - rubric <id>              — show one rubric with criteria
//	  - evaluations [n]          — list the n most recent evaluations
//	  - analytics                — student or class analytics, by role
//	  - upload <path>            — validate and upload an answer sheet
//	  - evaluate <subm> <rubric> — grade a submission against a rubric
//	  - report [file]            — export an HTML report
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers surface
// their own notifications. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("scanmark (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, rubrics [subject], rubric <id>, evaluations [n], analytics, upload <path>, evaluate <submission-id> <rubric-id>, report [file], health, logout, exit")
			} else {
				printlnFn("Available commands: register, login, health, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "rubrics":
			subject := ""
			if len(args) > 0 {
				subject = args[0]
			}
			_ = a.Rubrics(ctx, subject)

		case "rubric":
			if len(args) == 0 {
				printlnFn("Usage: rubric <id>")
				continue
			}
			_ = a.RubricDetail(ctx, args[0])

		case "evaluations":
			limit := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					printlnFn("Usage: evaluations [n]")
					continue
				}
				limit = n
			}
			_ = a.Evaluations(ctx, limit)

		case "analytics":
			_ = a.Analytics(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "evaluate":
			if len(args) < 2 {
				printlnFn("Usage: evaluate <submission-id> <rubric-id>")
				continue
			}
			_ = a.Evaluate(ctx, args[0], args[1])

		case "report":
			path := "scanmark-report.html"
			if len(args) > 0 {
				path = args[0]
			}
			_ = a.Report(ctx, path)

		case "health":
			_ = a.Health(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
