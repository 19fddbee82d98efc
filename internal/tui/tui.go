package tui

import (
	"context"

	"github.com/MKhiriev/go-intake-form/internal/engine"
	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI drives the interactive intake form in the terminal. The engine and the
// shared FormState must be wired to each other before construction: the state
// acts as the engine's form source and display.
type TUI struct {
	engine *engine.Engine
	form   *FormState
	info   models.AppBuildInfo
	log    *logger.Logger
}

func New(eng *engine.Engine, form *FormState, info models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{engine: eng, form: form, info: info, log: log}, nil
}

// Run blocks until the form is submitted or the user quits. On successful
// submission it returns the accepted record; if the user leaves without
// submitting it returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) (*models.Submission, error) {
	model := newAppModel(ctx, t.engine, t.form, t.info)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}
	if result.result == nil {
		return nil, ErrUserQuit
	}

	t.log.Info().Str("submission_id", result.result.SubmissionID).Msg("form submitted")
	return result.result, nil
}
