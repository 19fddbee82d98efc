package engine

import (
	"time"

	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/internal/validators"
	"github.com/MKhiriev/go-intake-form/models"
	"github.com/google/uuid"
)

// State enumerates the whole-form states of the review/submit flow.
type State int

const (
	// StateEditing is the initial state: the user is filling the form.
	StateEditing State = iota

	// StateReviewing means a review summary has been produced and the user is
	// deciding between edit and confirm.
	StateReviewing

	// StateSubmitted is terminal: the submission collaborator has accepted
	// the normalized record.
	StateSubmitted
)

// Engine owns the error map and the form state machine for one intake
// session. Construct one per form; there is no shared package-level state.
type Engine struct {
	src       FormSource
	display   Display
	submitter Submitter
	log       *logger.Logger

	errors map[string]string
	state  State

	now   func() time.Time
	newID func() string
}

// Option tweaks an Engine at construction time. Used by tests to pin the
// clock and the submission-ID source.
type Option func(*Engine)

// WithClock replaces the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource replaces the submission-ID generator.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New constructs an Engine over the given collaborators with an empty error
// map and the Editing state.
func New(src FormSource, display Display, submitter Submitter, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		src:       src,
		display:   display,
		submitter: submitter,
		log:       log,
		errors:    make(map[string]string),
		state:     StateEditing,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current whole-form state.
func (e *Engine) State() State {
	return e.state
}

// Errors returns a copy of the live error map.
func (e *Engine) Errors() map[string]string {
	out := make(map[string]string, len(e.errors))
	for k, v := range e.errors {
		out[k] = v
	}
	return out
}

// HandleFieldChange reacts to one content-change event: it applies the
// field's input mask (if any) to raw, validates the masked value, and returns
// the masked value so the display can write it back into the input. Exactly
// one error-map key is touched and readiness is republished.
func (e *Engine) HandleFieldChange(fieldID models.FieldID, raw string) string {
	rule, ok := validators.RuleFor(fieldID)
	if !ok {
		e.log.Warn().Str("field", string(fieldID)).Msg("change event for unregistered field")
		return raw
	}

	value := raw
	if rule.Mask != nil {
		value = rule.Mask(raw)
	}

	e.validateRule(rule, value)
	return value
}

// HandleFieldBlur reacts to a focus-loss event: the field is re-evaluated
// against its current value so untouched fields still get marked once the
// user leaves them. Input masks do not re-run here; the stored value is
// already formatted.
func (e *Engine) HandleFieldBlur(fieldID models.FieldID) {
	e.ValidateField(fieldID, e.src.Value(fieldID))
}

// ValidateField evaluates a single field against its registered rule and
// returns the verdict. On success the field's error-map entry is removed and
// the display is signalled "success"; on failure the entry is set to the
// rule's message and the display is signalled "error". Aggregate readiness is
// recomputed and published either way.
func (e *Engine) ValidateField(fieldID models.FieldID, value string) bool {
	rule, ok := validators.RuleFor(fieldID)
	if !ok {
		e.log.Warn().Str("field", string(fieldID)).Msg("validation requested for unregistered field")
		return false
	}
	return e.validateRule(rule, value)
}

func (e *Engine) validateRule(rule validators.FieldRule, value string) bool {
	valid := rule.Check(value, e.src)

	if valid {
		delete(e.errors, string(rule.FieldID))
		e.display.ShowFieldSuccess(rule.FieldID)
	} else {
		msg := rule.Message(value)
		e.errors[string(rule.FieldID)] = msg
		e.display.ShowFieldError(rule.FieldID, msg)
	}

	e.log.Debug().
		Str("field", string(rule.FieldID)).
		Bool("valid", valid).
		Msg("field validated")

	e.publishReadiness()
	return valid
}

// ValidateRadioGroup evaluates a required radio group: the condition is "at
// least one option selected", the message is the group's static required
// message. Error-map and display handling mirror ValidateField.
func (e *Engine) ValidateRadioGroup(group models.GroupName) bool {
	rule, ok := validators.GroupRuleFor(group)
	if !ok {
		e.log.Warn().Str("group", string(group)).Msg("validation requested for unregistered group")
		return false
	}

	selected := e.src.SelectedRadioValue(group) != ""
	if selected {
		delete(e.errors, string(group))
		e.display.ShowFieldSuccess(models.FieldID(group))
	} else {
		e.errors[string(group)] = rule.Message
		e.display.ShowFieldError(models.FieldID(group), rule.Message)
	}

	e.log.Debug().
		Str("group", string(group)).
		Bool("valid", selected).
		Msg("radio group validated")

	e.publishReadiness()
	return selected
}

// Readiness reports whether the form is submittable right now: the error map
// is empty, every required field has a non-empty current value, and every
// radio group has a selection. It is a pure function of current form state
// and is never cached.
func (e *Engine) Readiness() bool {
	if len(e.errors) > 0 {
		return false
	}
	for _, fieldID := range validators.RequiredFields() {
		if e.src.Value(fieldID) == "" {
			return false
		}
	}
	for _, g := range validators.GroupRules() {
		if e.src.SelectedRadioValue(g.Group) == "" {
			return false
		}
	}
	return true
}

func (e *Engine) publishReadiness() {
	e.display.SetSubmitEnabled(e.Readiness())
}
