package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-intake-form/internal/validators"
	"github.com/MKhiriev/go-intake-form/models"
)

// Review runs the Editing → Reviewing transition. Every field and group is
// re-validated out of band against its current value, producing a fresh error
// map, and a structured per-section summary is built from the same verdicts
// and handed to the display adapter. The transition always succeeds; the
// summary records whether overall validity holds. Underlying field values are
// only read, never mutated.
func (e *Engine) Review() models.ReviewSummary {
	e.revalidateAll()

	summary := e.buildSummary()
	e.state = StateReviewing

	e.log.Info().
		Bool("valid", summary.Valid).
		Int("errors", len(e.errors)).
		Msg("entered review")

	e.display.RenderReviewSummary(summary)
	e.display.ScrollToReview()
	e.publishReadiness()

	return summary
}

// Edit runs the Reviewing → Editing transition: the summary is discarded and
// the error map is left exactly as the review pass established it.
func (e *Engine) Edit() {
	if e.state != StateReviewing {
		return
	}
	e.state = StateEditing
	e.log.Info().Msg("returned to editing")
}

// Confirm runs the Reviewing → Submitted transition. The whole form is
// validated once more; if any error remains the transition is refused with
// ErrSubmitBlocked and the state stays Reviewing. Otherwise the normalized
// submission (user ID and email lower-cased) is handed to the submitter and
// the engine enters Submitted. A transport failure also leaves the state in
// Reviewing so the confirmation can be retried.
func (e *Engine) Confirm(ctx context.Context) (models.Submission, error) {
	switch e.state {
	case StateSubmitted:
		return models.Submission{}, ErrAlreadySubmitted
	case StateEditing:
		return models.Submission{}, ErrNotReviewing
	}

	e.revalidateAll()
	e.publishReadiness()

	if len(e.errors) > 0 {
		e.log.Warn().Int("errors", len(e.errors)).Msg("confirmation refused")
		return models.Submission{}, ErrSubmitBlocked
	}

	sub := e.buildSubmission()
	if err := e.submitter.Submit(ctx, sub); err != nil {
		return models.Submission{}, fmt.Errorf("submit intake form: %w", err)
	}

	e.state = StateSubmitted
	e.log.Info().Str("submission_id", sub.SubmissionID).Msg("form submitted")

	return sub, nil
}

// revalidateAll rebuilds the error map from scratch by replaying every rule
// against current values. Because every predicate is a pure function of its
// inputs, the result matches what live per-field validation would hold for
// the same values.
func (e *Engine) revalidateAll() {
	fresh := make(map[string]string)

	for _, rule := range validators.Rules() {
		value := e.src.Value(rule.FieldID)
		if !rule.Check(value, e.src) {
			fresh[string(rule.FieldID)] = rule.Message(value)
		}
	}
	for _, g := range validators.GroupRules() {
		if e.src.SelectedRadioValue(g.Group) == "" {
			fresh[string(g.Group)] = g.Message
		}
	}

	e.errors = fresh
}

// buildSummary derives the per-section review model from the same validators
// that populate the error map, so section verdicts can never disagree with
// the per-field entries.
func (e *Engine) buildSummary() models.ReviewSummary {
	summary := models.ReviewSummary{Valid: true}

	for _, section := range models.Sections() {
		sec := models.ReviewSection{Section: section, Valid: true}

		for _, rule := range validators.Rules() {
			if rule.Section != section {
				continue
			}
			value := e.src.Value(rule.FieldID)
			item := models.ReviewItem{
				Label: rule.Label,
				Value: displayValue(rule.FieldID, value),
				Valid: rule.Check(value, e.src),
			}
			sec.Items = append(sec.Items, item)
			sec.Valid = sec.Valid && item.Valid
		}

		for _, g := range validators.GroupRules() {
			if g.Section != section {
				continue
			}
			selected := e.src.SelectedRadioValue(g.Group)
			item := models.ReviewItem{
				Label: g.Label,
				Value: selected,
				Valid: selected != "",
			}
			sec.Items = append(sec.Items, item)
			sec.Valid = sec.Valid && item.Valid
		}

		for _, g := range validators.CheckboxGroups() {
			if g.Section != section {
				continue
			}
			// Checkboxes carry no rule; they always pass.
			sec.Items = append(sec.Items, models.ReviewItem{
				Label: g.Label,
				Value: strings.Join(e.src.CheckedCheckboxValues(g.Group), ", "),
				Valid: true,
			})
		}

		summary.Sections = append(summary.Sections, sec)
		summary.Valid = summary.Valid && sec.Valid
	}

	return summary
}

// buildSubmission collects the final values. User ID and email are
// lower-cased; everything else is submitted exactly as entered.
func (e *Engine) buildSubmission() models.Submission {
	fields := make(map[models.FieldID]string, len(validators.Rules()))
	for _, rule := range validators.Rules() {
		fields[rule.FieldID] = e.src.Value(rule.FieldID)
	}
	fields[models.FieldUserID] = strings.ToLower(fields[models.FieldUserID])
	fields[models.FieldEmail] = strings.ToLower(fields[models.FieldEmail])

	selections := make(map[models.GroupName]string, len(validators.GroupRules()))
	for _, g := range validators.GroupRules() {
		selections[g.Group] = e.src.SelectedRadioValue(g.Group)
	}

	checked := make(map[models.GroupName][]string)
	for _, g := range validators.CheckboxGroups() {
		if values := e.src.CheckedCheckboxValues(g.Group); len(values) > 0 {
			checked[g.Group] = values
		}
	}

	return models.Submission{
		SubmissionID: e.newID(),
		SubmittedAt:  e.now(),
		Fields:       fields,
		Selections:   selections,
		Checked:      checked,
	}
}

// displayValue renders a field value for the review summary. Passwords are
// masked by character count and never shown in clear text.
func displayValue(fieldID models.FieldID, value string) string {
	if fieldID == models.FieldPassword || fieldID == models.FieldConfirmPassword {
		return strings.Repeat("*", len(value))
	}
	return value
}
