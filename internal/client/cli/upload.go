package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scanmark/internal/client/progress"
	"github.com/dmitrijs2005/scanmark/internal/client/view"
)

// Upload validates the selected file, shows a preview, prompts for the
// optional question text and assignment id, and performs the upload with
// simulated progress feedback. The session check comes first: without a
// login nothing is validated and nothing reaches the network.
func (a *App) Upload(ctx context.Context, path string) error {
	if err := a.requireSession(); err != nil {
		return a.fail(ctx, err)
	}

	draft, err := a.upload.Prepare(path, "", "")
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Selected %s (%s)\n", draft.FileName, view.FormatFileSize(draft.Size))

	if draft.Question, err = getSimpleText(a.reader, "Question text (optional)", a.out); err != nil {
		return err
	}
	if draft.AssignmentID, err = getSimpleText(a.reader, "Assignment id (optional)", a.out); err != nil {
		return err
	}

	res, err := a.upload.Submit(ctx, draft, func(u progress.Update) {
		fmt.Fprintf(a.out, "\r%3d%% %-20s", u.Percent, u.Label)
	})
	fmt.Fprintln(a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.notify("upload accepted, submission %s", res.SubmissionID)
	return nil
}
