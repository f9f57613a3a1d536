package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/scanmark/internal/client/api"
	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/progress"
	"github.com/dmitrijs2005/scanmark/internal/common"
)

// MaxUploadSize is the backend's upload ceiling. A file of exactly this
// size is accepted.
const MaxUploadSize = 16 * 1024 * 1024

// allowedMIMETypes is the upload allow-list: PNG, JPEG, PDF and DOCX.
var allowedMIMETypes = map[string]struct{}{
	"image/png":       {},
	"image/jpeg":      {},
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Draft is a validated upload candidate: the selected file plus the
// optional question text and assignment id. It is created by Prepare and
// consumed by Submit.
type Draft struct {
	Path         string
	FileName     string
	Size         int64
	ContentType  string
	Question     string
	AssignmentID string
}

// UploadService validates file selections and performs the authenticated
// upload, driving the simulated progress feedback.
type UploadService interface {
	// Prepare validates the selection. A rejected file never triggers a
	// network call; the error wraps common.ErrFileTypeNotAllowed or
	// common.ErrFileTooLarge.
	Prepare(path, question, assignmentID string) (*Draft, error)

	// Submit uploads the draft. onTick receives the simulated progress
	// updates; the simulation is cancelled on every exit path.
	Submit(ctx context.Context, d *Draft, onTick func(progress.Update)) (*models.UploadResult, error)
}

type uploadService struct {
	client api.Client
	sim    *progress.Simulator
}

// NewUploadService constructs an UploadService. The simulator is owned by
// the service, so at most one progress simulation runs at any time.
func NewUploadService(client api.Client, sim *progress.Simulator) UploadService {
	return &uploadService{client: client, sim: sim}
}

func (u *uploadService) Prepare(path, question, assignmentID string) (*Draft, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrNoFileSelected, path)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", common.ErrNoFileSelected, path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect file type: %w", err)
	}
	if _, ok := allowedMIMETypes[mt.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrFileTypeNotAllowed, mt.String())
	}

	if fi.Size() > MaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes", common.ErrFileTooLarge, fi.Size())
	}

	return &Draft{
		Path:         path,
		FileName:     filepath.Base(path),
		Size:         fi.Size(),
		ContentType:  mt.String(),
		Question:     question,
		AssignmentID: assignmentID,
	}, nil
}

func (u *uploadService) Submit(ctx context.Context, d *Draft, onTick func(progress.Update)) (*models.UploadResult, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	u.sim.Start(ctx, onTick)
	defer u.sim.Stop()

	res, err := u.client.Upload(ctx, &api.UploadRequest{
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		Body:         f,
		Question:     d.Question,
		AssignmentID: d.AssignmentID,
		RequestID:    uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
