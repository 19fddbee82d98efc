package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-intake-form/internal/engine"
	"github.com/MKhiriev/go-intake-form/internal/validators"
	"github.com/MKhiriev/go-intake-form/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenForm screen = iota
	screenReview
	screenSubmitted
	screenInfo
)

type controlKind int

const (
	controlField controlKind = iota
	controlRadio
	controlCheckbox
)

// control is one focusable element of the form screen: a text input, a radio
// group, or a checkbox group.
type control struct {
	kind  controlKind
	field models.FieldID
	group models.GroupName
}

type appModel struct {
	ctx    context.Context
	engine *engine.Engine
	form   *FormState
	info   models.AppBuildInfo

	currentScreen screen
	controls      []control
	focus         int
	optCursor     map[models.GroupName]int

	submitting   bool
	reviewScroll int
	status       string
	showError  bool
	errorOverlay errorOverlayModel

	result     *models.Submission
	quitByUser bool
}

func newAppModel(ctx context.Context, eng *engine.Engine, form *FormState, info models.AppBuildInfo) appModel {
	m := appModel{
		ctx:       ctx,
		engine:    eng,
		form:      form,
		info:      info,
		controls:  buildControls(),
		optCursor: make(map[models.GroupName]int),
	}
	if c, ok := m.currentControl(); ok && c.kind == controlField {
		i := form.inputIdx[c.field]
		form.inputs[i].Focus()
	}
	return m
}

// buildControls lays the focusable controls out in section order: a section's
// text fields first, then its radio groups, then its checkbox groups.
func buildControls() []control {
	var out []control
	for _, section := range models.Sections() {
		for _, r := range validators.Rules() {
			if r.Section == section {
				out = append(out, control{kind: controlField, field: r.FieldID})
			}
		}
		for _, g := range validators.GroupRules() {
			if g.Section == section {
				out = append(out, control{kind: controlRadio, group: g.Group})
			}
		}
		for _, g := range validators.CheckboxGroups() {
			if g.Section == section {
				out = append(out, control{kind: controlCheckbox, group: g.Group})
			}
		}
	}
	return out
}

func (m appModel) currentControl() (control, bool) {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return control{}, false
	}
	return m.controls[m.focus], true
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			if m.currentScreen != screenSubmitted {
				m.quitByUser = true
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.showErrorf(submitErrorMessage(msg.err))
			return m, nil
		}
		m.result = &msg.submission
		m.currentScreen = screenSubmitted
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenForm:
		return m.updateForm(msg)
	case screenReview:
		return m.updateReview(msg)
	case screenSubmitted:
		return m.updateSubmitted(msg)
	case screenInfo:
		return m.updateInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenForm:
		body = m.viewForm()
	case screenReview:
		body = m.viewReview()
	case screenSubmitted:
		body = m.viewSubmitted()
	case screenInfo:
		body = renderBuildInfoWindow(m.info)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ── form screen ───────────────────────────────────────────────────────────────

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	current, hasControl := m.currentControl()

	switch {
	case key.Matches(keyMsg, keys.enter):
		m.engine.Review()
		if m.form.scrollToSummary {
			m.reviewScroll = 0
			m.form.scrollToSummary = false
		}
		m.currentScreen = screenReview
		return m, nil
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
		return m.moveFocus(1), nil
	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
		return m.moveFocus(-1), nil
	}

	if hasControl && current.kind != controlField {
		return m.updateGroupControl(current, keyMsg), nil
	}
	if !hasControl {
		return m, nil
	}

	// Text field: let the widget consume the key, then push the new value
	// through the engine and write the masked result back.
	i := m.form.inputIdx[current.field]
	before := m.form.inputs[i].Value()

	var cmd tea.Cmd
	m.form.inputs[i], cmd = m.form.inputs[i].Update(keyMsg)

	after := m.form.inputs[i].Value()
	if after != before {
		masked := m.engine.HandleFieldChange(current.field, after)
		if masked != after {
			m.form.inputs[i].SetValue(masked)
			m.form.inputs[i].CursorEnd()
		}
	}
	return m, cmd
}

func (m appModel) updateGroupControl(c control, keyMsg tea.KeyMsg) appModel {
	options := radioOptions[c.group]
	if c.kind == controlCheckbox {
		options = checkboxOptions[c.group]
	}
	if len(options) == 0 {
		return m
	}

	cursor := m.optCursor[c.group]

	switch {
	case key.Matches(keyMsg, keys.left):
		if cursor > 0 {
			m.optCursor[c.group] = cursor - 1
		}
	case key.Matches(keyMsg, keys.right):
		if cursor < len(options)-1 {
			m.optCursor[c.group] = cursor + 1
		}
	case key.Matches(keyMsg, keys.space):
		if c.kind == controlRadio {
			m.form.setRadio(c.group, options[cursor].value)
			m.engine.ValidateRadioGroup(c.group)
		} else {
			m.form.toggleCheckbox(c.group, options[cursor].value)
		}
	}

	return m
}

// moveFocus shifts focus by delta. Leaving a text field blurs the widget and
// fires the engine's blur validation for that field.
func (m appModel) moveFocus(delta int) appModel {
	if len(m.controls) == 0 {
		return m
	}

	if current, ok := m.currentControl(); ok && current.kind == controlField {
		i := m.form.inputIdx[current.field]
		m.form.inputs[i].Blur()
		m.engine.HandleFieldBlur(current.field)
	}

	m.focus = (m.focus + delta + len(m.controls)) % len(m.controls)

	if next, ok := m.currentControl(); ok && next.kind == controlField {
		i := m.form.inputIdx[next.field]
		m.form.inputs[i].Focus()
	}
	return m
}

// ── review screen ─────────────────────────────────────────────────────────────

func (m appModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.confirm):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdConfirm()
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.esc):
		if m.submitting {
			return m, nil
		}
		m.engine.Edit()
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.form.summary == nil {
			return m, nil
		}
		return m, cmdCopySummary(*m.form.summary)
	case key.Matches(keyMsg, keys.info):
		m.currentScreen = screenInfo
		return m, nil
	case key.Matches(keyMsg, keys.down):
		m.reviewScroll++
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.reviewScroll > 0 {
			m.reviewScroll--
		}
		return m, nil
	}

	return m, nil
}

// ── submitted screen ──────────────────────────────────────────────────────────

func (m appModel) updateSubmitted(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.copy):
		if m.result == nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.result.SubmissionID)
	}

	return m, nil
}

// ── info screen ───────────────────────────────────────────────────────────────

func (m appModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenReview
	}
	return m, nil
}

// ── commands ──────────────────────────────────────────────────────────────────

func (m appModel) cmdConfirm() tea.Cmd {
	ctx := m.ctx
	eng := m.engine
	return func() tea.Msg {
		sub, err := eng.Confirm(ctx)
		return submitDoneMsg{submission: sub, err: err}
	}
}

func cmdCopySummary(summary models.ReviewSummary) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return copyFailedMsg{err: fmt.Errorf("encode summary: %w", err)}
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrSubmitBlocked):
		return "The form still has invalid fields. Press e to go back and fix them."
	case errors.Is(err, engine.ErrAlreadySubmitted):
		return "This form has already been submitted."
	default:
		return "Submission failed: " + err.Error()
	}
}
