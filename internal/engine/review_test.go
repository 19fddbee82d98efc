package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestReview
// ---------------------------------------------------------------------------

func TestReview(t *testing.T) {
	t.Run("enters reviewing and renders the summary", func(t *testing.T) {
		eng, display, _ := newTestEngine(validForm())

		summary := eng.Review()

		assert.Equal(t, StateReviewing, eng.State())
		assert.True(t, summary.Valid)
		require.Len(t, display.summaries, 1)
		assert.Equal(t, summary, display.summaries[0])
		assert.Equal(t, 1, display.scrolls)
	})

	t.Run("summary sections follow the form layout", func(t *testing.T) {
		eng, _, _ := newTestEngine(validForm())

		summary := eng.Review()

		var sections []models.Section
		for _, s := range summary.Sections {
			sections = append(sections, s.Section)
		}
		assert.Equal(t, models.Sections(), sections)
	})

	t.Run("review is always displayable and records invalidity", func(t *testing.T) {
		form := validForm()
		form.values[models.FieldZip] = "1234"
		delete(form.radios, models.GroupGender)
		eng, _, _ := newTestEngine(form)

		summary := eng.Review()

		assert.Equal(t, StateReviewing, eng.State())
		assert.False(t, summary.Valid)

		for _, s := range summary.Sections {
			switch s.Section {
			case models.SectionAddress, models.SectionPersonal:
				assert.False(t, s.Valid, "section %s must fail", s.Section)
			default:
				assert.True(t, s.Valid, "section %s must pass", s.Section)
			}
		}
	})

	t.Run("verdicts reproduce the live error map for unchanged values", func(t *testing.T) {
		form := validForm()
		form.values[models.FieldZip] = "1234"
		form.values[models.FieldEmail] = "broken"
		eng, _, _ := newTestEngine(form)

		// Live edits populate the map the same way the user would.
		eng.HandleFieldBlur(models.FieldZip)
		eng.HandleFieldBlur(models.FieldEmail)
		live := eng.Errors()

		eng.Review()

		assert.Equal(t, live, eng.Errors(),
			"review must rebuild byte-identical entries for unchanged values")
	})

	t.Run("does not mutate underlying field values", func(t *testing.T) {
		form := validForm()
		before := make(map[models.FieldID]string, len(form.values))
		for k, v := range form.values {
			before[k] = v
		}
		eng, _, _ := newTestEngine(form)

		eng.Review()

		assert.Equal(t, before, form.values)
	})

	t.Run("passwords are masked by character count", func(t *testing.T) {
		form := validForm()
		eng, _, _ := newTestEngine(form)

		summary := eng.Review()

		var account models.ReviewSection
		for _, s := range summary.Sections {
			if s.Section == models.SectionAccount {
				account = s
			}
		}
		require.NotEmpty(t, account.Items)

		for _, item := range account.Items {
			if item.Label == "Password" || item.Label == "Confirm password" {
				assert.Equal(t, strings.Repeat("*", len("Abcdefg1")), item.Value)
				assert.NotContains(t, item.Value, "Abcdefg1")
			}
		}
	})

	t.Run("checkbox selections appear in the health section", func(t *testing.T) {
		eng, _, _ := newTestEngine(validForm())

		summary := eng.Review()

		for _, s := range summary.Sections {
			if s.Section != models.SectionHealth {
				continue
			}
			var found bool
			for _, item := range s.Items {
				if item.Label == "Existing conditions" {
					found = true
					assert.Equal(t, "asthma, diabetes", item.Value)
					assert.True(t, item.Valid)
				}
			}
			assert.True(t, found)
		}
	})
}

// ---------------------------------------------------------------------------
// TestEdit
// ---------------------------------------------------------------------------

func TestEdit(t *testing.T) {
	t.Run("returns to editing with the error map untouched", func(t *testing.T) {
		form := validForm()
		form.values[models.FieldZip] = "1234"
		eng, _, _ := newTestEngine(form)

		eng.Review()
		afterReview := eng.Errors()

		eng.Edit()

		assert.Equal(t, StateEditing, eng.State())
		assert.Equal(t, afterReview, eng.Errors())
	})

	t.Run("no effect outside reviewing", func(t *testing.T) {
		eng, _, _ := newTestEngine(validForm())
		eng.Edit()
		assert.Equal(t, StateEditing, eng.State())
	})
}

// ---------------------------------------------------------------------------
// TestConfirm
// ---------------------------------------------------------------------------

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("valid form submits normalized values", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
		form := validForm()
		display := newFakeDisplay()
		submitter := &fakeSubmitter{}
		eng := New(form, display, submitter, logger.Nop(),
			WithClock(func() time.Time { return now }),
			WithIDSource(func() string { return "sub-1" }),
		)

		eng.Review()
		sub, err := eng.Confirm(ctx)
		require.NoError(t, err)

		assert.Equal(t, StateSubmitted, eng.State())
		require.Len(t, submitter.submissions, 1)
		assert.Equal(t, "sub-1", sub.SubmissionID)
		assert.Equal(t, now, sub.SubmittedAt)

		// Normalization: user ID and email lower-cased, everything else verbatim.
		assert.Equal(t, "jdoe-99", sub.Fields[models.FieldUserID])
		assert.Equal(t, "jane.obrien@example.com", sub.Fields[models.FieldEmail])
		assert.Equal(t, "O'Brien", sub.Fields[models.FieldLastName])
		assert.Equal(t, "female", sub.Selections[models.GroupGender])
		assert.Equal(t, []string{"asthma", "diabetes"}, sub.Checked[models.GroupConditions])
	})

	t.Run("invalid field refuses the transition and stays reviewing", func(t *testing.T) {
		form := validForm()
		eng, _, submitter := newTestEngine(form)

		eng.Review()
		form.values[models.FieldZip] = "1234"

		_, err := eng.Confirm(ctx)
		require.ErrorIs(t, err, ErrSubmitBlocked)
		assert.Equal(t, StateReviewing, eng.State())
		assert.Empty(t, submitter.submissions, "submitter must not be invoked with errors present")
	})

	t.Run("confirm outside reviewing is rejected", func(t *testing.T) {
		eng, _, _ := newTestEngine(validForm())
		_, err := eng.Confirm(ctx)
		require.ErrorIs(t, err, ErrNotReviewing)
	})

	t.Run("second confirm after submission is rejected", func(t *testing.T) {
		eng, _, _ := newTestEngine(validForm())
		eng.Review()
		_, err := eng.Confirm(ctx)
		require.NoError(t, err)

		_, err = eng.Confirm(ctx)
		require.ErrorIs(t, err, ErrAlreadySubmitted)
	})

	t.Run("transport failure keeps the reviewing state", func(t *testing.T) {
		form := validForm()
		display := newFakeDisplay()
		submitter := &fakeSubmitter{err: errors.New("endpoint down")}
		eng := New(form, display, submitter, logger.Nop())

		eng.Review()
		_, err := eng.Confirm(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSubmitBlocked)
		assert.Equal(t, StateReviewing, eng.State())
	})
}
