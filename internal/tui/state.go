// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-intake-form/internal/engine"
	"github.com/MKhiriev/go-intake-form/internal/validators"
	"github.com/MKhiriev/go-intake-form/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// FormState is the single mutable store behind the form screens. It holds the
// text inputs, group selections, and the per-field verdicts pushed by the
// validation engine, and it satisfies both [engine.FormSource] (reads) and
// [engine.Display] (writes). The bubbletea models copy freely; they all share
// one *FormState so engine notifications survive model copies.
type FormState struct {
	inputs   []textinput.Model
	inputIdx map[models.FieldID]int
	fields   []models.FieldID

	radios map[models.GroupName]string
	checks map[models.GroupName]map[string]bool

	fieldErrors map[models.FieldID]string
	fieldOK     map[models.FieldID]bool

	submitEnabled   bool
	summary         *models.ReviewSummary
	scrollToSummary bool
}

// NewFormState builds the input widgets for every registered field rule, in
// rules-table order, with nothing selected and no verdicts recorded.
func NewFormState() *FormState {
	rules := validators.Rules()

	s := &FormState{
		inputs:      make([]textinput.Model, len(rules)),
		inputIdx:    make(map[models.FieldID]int, len(rules)),
		fields:      make([]models.FieldID, len(rules)),
		radios:      make(map[models.GroupName]string),
		checks:      make(map[models.GroupName]map[string]bool),
		fieldErrors: make(map[models.FieldID]string),
		fieldOK:     make(map[models.FieldID]bool),
	}

	for i, rule := range rules {
		in := textinput.New()
		in.Width = 40
		in.Prompt = ""
		if rule.FieldID == models.FieldPassword || rule.FieldID == models.FieldConfirmPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if rule.FieldID == models.FieldState {
			in.CharLimit = 2
			in.Placeholder = "CA"
		}
		s.inputs[i] = in
		s.inputIdx[rule.FieldID] = i
		s.fields[i] = rule.FieldID
	}

	for _, g := range validators.CheckboxGroups() {
		s.checks[g.Group] = make(map[string]bool)
	}

	return s
}

// ── engine.FormSource ─────────────────────────────────────────────────────────

// Value returns the current text of the field's input widget.
func (s *FormState) Value(fieldID models.FieldID) string {
	i, ok := s.inputIdx[fieldID]
	if !ok {
		return ""
	}
	return s.inputs[i].Value()
}

// SelectedRadioValue returns the selected option value of the radio group.
func (s *FormState) SelectedRadioValue(group models.GroupName) string {
	return s.radios[group]
}

// CheckedCheckboxValues returns the checked option values in option-table
// order.
func (s *FormState) CheckedCheckboxValues(group models.GroupName) []string {
	checked := s.checks[group]
	if len(checked) == 0 {
		return nil
	}

	var out []string
	for _, opt := range checkboxOptions[group] {
		if checked[opt.value] {
			out = append(out, opt.value)
		}
	}
	return out
}

// ── engine.Display ────────────────────────────────────────────────────────────

// ShowFieldError records a failing verdict with its message for rendering.
func (s *FormState) ShowFieldError(fieldID models.FieldID, message string) {
	s.fieldErrors[fieldID] = message
	s.fieldOK[fieldID] = false
}

// ShowFieldSuccess clears any recorded error for the field.
func (s *FormState) ShowFieldSuccess(fieldID models.FieldID) {
	delete(s.fieldErrors, fieldID)
	s.fieldOK[fieldID] = true
}

// SetSubmitEnabled stores the latest aggregate readiness flag.
func (s *FormState) SetSubmitEnabled(enabled bool) {
	s.submitEnabled = enabled
}

// RenderReviewSummary stores the summary for the review screen to draw.
func (s *FormState) RenderReviewSummary(summary models.ReviewSummary) {
	s.summary = &summary
}

// ScrollToReview requests the review screen viewport be reset to the top.
func (s *FormState) ScrollToReview() {
	s.scrollToSummary = true
}

// ── widget plumbing ───────────────────────────────────────────────────────────

func (s *FormState) setRadio(group models.GroupName, value string) {
	s.radios[group] = value
}

func (s *FormState) toggleCheckbox(group models.GroupName, value string) {
	set, ok := s.checks[group]
	if !ok {
		set = make(map[string]bool)
		s.checks[group] = set
	}
	set[value] = !set[value]
}

var _ engine.FormSource = (*FormState)(nil)
var _ engine.Display = (*FormState)(nil)
