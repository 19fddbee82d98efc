package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-intake-form/internal/adapter"
	"github.com/MKhiriev/go-intake-form/internal/engine"
	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/internal/tui"
	"github.com/MKhiriev/go-intake-form/models"
)

// App runs one interactive intake session from blank form to submission.
type App struct {
	submitter adapter.Submitter
	info      models.AppBuildInfo
	log       *logger.Logger
}

func NewApp(submitter adapter.Submitter, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if submitter == nil {
		return nil, errors.New("nil submitter")
	}
	return &App{submitter: submitter, info: info, log: log}, nil
}

// Run blocks until the form is submitted or abandoned. A user quitting
// without submitting is a normal exit, not an error.
func (a *App) Run() error {
	ctx := context.Background()

	form := tui.NewFormState()
	eng := engine.New(form, form, a.submitter, a.log)

	ui, err := tui.New(eng, form, a.info, a.log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	submission, err := ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.log.Info().Msg("form abandoned before submission")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Submission %s accepted at %s\n",
		submission.SubmissionID, submission.SubmittedAt.Format(time.RFC3339))
	return nil
}
