package tui

import (
	"github.com/MKhiriev/go-intake-form/models"
)

type submitDoneMsg struct {
	submission models.Submission
	err        error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
