package validators

import (
	"time"

	"github.com/MKhiriev/go-intake-form/internal/format"
	"github.com/MKhiriev/go-intake-form/models"
)

// CheckFunc is the uniform predicate shape stored in the rules table. form
// carries the live sibling values for cross-field rules; single-field
// predicates ignore it.
type CheckFunc func(value string, form Snapshot) bool

// MessageFunc produces the error message shown when a rule fails. Most rules
// ignore the invalid value and return a constant.
type MessageFunc func(value string) string

// MaskFunc is an optional input mask applied to the raw value before the
// predicate runs, within the same change event.
type MaskFunc func(raw string) string

// FieldRule binds one field identifier to its predicate, message producer,
// required flag, and optional input mask.
type FieldRule struct {
	FieldID  models.FieldID
	Label    string
	Section  models.Section
	Required bool
	Mask     MaskFunc
	Check    CheckFunc
	Message  MessageFunc
}

// GroupRule binds one required radio group to its unselected-state message.
type GroupRule struct {
	Group   models.GroupName
	Label   string
	Section models.Section
	Message string
}

func message(text string) MessageFunc {
	return func(string) string { return text }
}

func check(pred func(string) bool) CheckFunc {
	return func(value string, _ Snapshot) bool { return pred(value) }
}

// rules is the static ordered registry, built once at package initialization.
// Order matches the form's visual order and drives the review summary.
var rules = []FieldRule{
	{
		FieldID:  models.FieldFirstName,
		Label:    "First name",
		Section:  models.SectionPersonal,
		Required: true,
		Check:    check(ValidName),
		Message:  message("First name must be 1 to 30 letters, apostrophes, or hyphens."),
	},
	{
		FieldID: models.FieldMiddleInitial,
		Label:   "Middle initial",
		Section: models.SectionPersonal,
		Check:   check(ValidMiddleInitial),
		Message: message("Middle initial must be a single letter or left blank."),
	},
	{
		FieldID:  models.FieldLastName,
		Label:    "Last name",
		Section:  models.SectionPersonal,
		Required: true,
		Check:    check(ValidName),
		// The one message producer that is a real function of the value in the
		// source form; it collapses to a constant in practice.
		Message: func(string) string {
			return "Last name must be 1 to 30 letters, apostrophes, or hyphens."
		},
	},
	{
		FieldID:  models.FieldDateOfBirth,
		Label:    "Date of birth",
		Section:  models.SectionPersonal,
		Required: true,
		Check: func(value string, _ Snapshot) bool {
			return ValidDateOfBirth(value, time.Now())
		},
		Message: message("Date of birth must be a real MM/DD/YYYY date, not in the future, and within 120 years."),
	},
	{
		FieldID:  models.FieldSSN,
		Label:    "Social security number",
		Section:  models.SectionPersonal,
		Required: true,
		Mask:     format.SSN,
		Check:    check(ValidSSN),
		Message:  message("Social security number must be 9 digits: XXX-XX-XXXX."),
	},
	{
		FieldID:  models.FieldAddress1,
		Label:    "Address line 1",
		Section:  models.SectionAddress,
		Required: true,
		Check:    check(ValidAddressLine1),
		Message:  message("Address line 1 must be 2 to 30 characters."),
	},
	{
		FieldID: models.FieldAddress2,
		Label:   "Address line 2",
		Section: models.SectionAddress,
		Check:   check(ValidAddressLine2),
		Message: message("Address line 2 must be 2 to 30 characters or left blank."),
	},
	{
		FieldID:  models.FieldCity,
		Label:    "City",
		Section:  models.SectionAddress,
		Required: true,
		Check:    check(ValidCity),
		Message:  message("City must be 2 to 30 characters."),
	},
	{
		FieldID:  models.FieldState,
		Label:    "State",
		Section:  models.SectionAddress,
		Required: true,
		Check:    check(ValidState),
		Message:  message("Please select a state."),
	},
	{
		FieldID:  models.FieldZip,
		Label:    "ZIP code",
		Section:  models.SectionAddress,
		Required: true,
		Check:    check(ValidZip),
		Message:  message("ZIP code must be exactly 5 digits."),
	},
	{
		FieldID:  models.FieldEmail,
		Label:    "Email",
		Section:  models.SectionContact,
		Required: true,
		Check:    check(ValidEmail),
		Message:  message("Email must look like name@domain.tld."),
	},
	{
		FieldID: models.FieldPhone,
		Label:   "Phone",
		Section: models.SectionContact,
		Mask:    format.Phone,
		Check:   check(ValidPhone),
		Message: message("Phone must be 10 digits: XXX-XXX-XXXX, or left blank."),
	},
	{
		FieldID:  models.FieldUserID,
		Label:    "User ID",
		Section:  models.SectionAccount,
		Required: true,
		Check:    check(ValidUserID),
		Message:  message("User ID must be 5 to 20 characters, start with a letter, and use only letters, digits, hyphens, or underscores."),
	},
	{
		FieldID:  models.FieldPassword,
		Label:    "Password",
		Section:  models.SectionAccount,
		Required: true,
		Check:    ValidPassword,
		Message:  message("Password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit, and must not equal the user ID."),
	},
	{
		FieldID:  models.FieldConfirmPassword,
		Label:    "Confirm password",
		Section:  models.SectionAccount,
		Required: true,
		Check:    ValidConfirmPassword,
		Message:  message("Passwords do not match."),
	},
}

var groupRules = []GroupRule{
	{
		Group:   models.GroupGender,
		Label:   "Gender",
		Section: models.SectionPersonal,
		Message: "Please select a gender.",
	},
	{
		Group:   models.GroupInsurance,
		Label:   "Insurance",
		Section: models.SectionHealth,
		Message: "Please select an insurance status.",
	},
}

// checkboxGroups lists the optional checkbox groups. They carry no rule; the
// review summary and the submission payload read their selections.
var checkboxGroups = []GroupRule{
	{
		Group:   models.GroupConditions,
		Label:   "Existing conditions",
		Section: models.SectionHealth,
	},
}

var rulesByField = func() map[models.FieldID]FieldRule {
	m := make(map[models.FieldID]FieldRule, len(rules))
	for _, r := range rules {
		m[r.FieldID] = r
	}
	return m
}()

var groupRulesByName = func() map[models.GroupName]GroupRule {
	m := make(map[models.GroupName]GroupRule, len(groupRules))
	for _, r := range groupRules {
		m[r.Group] = r
	}
	return m
}()

// Rules returns the static ordered field rules table.
func Rules() []FieldRule {
	return rules
}

// GroupRules returns the static required radio group rules.
func GroupRules() []GroupRule {
	return groupRules
}

// RuleFor returns the rule registered for fieldID.
func RuleFor(fieldID models.FieldID) (FieldRule, bool) {
	r, ok := rulesByField[fieldID]
	return r, ok
}

// GroupRuleFor returns the rule registered for the named radio group.
func GroupRuleFor(group models.GroupName) (GroupRule, bool) {
	r, ok := groupRulesByName[group]
	return r, ok
}

// CheckboxGroups returns the optional checkbox groups in form order.
func CheckboxGroups() []GroupRule {
	return checkboxGroups
}

// RequiredFields returns the identifiers of every field that must be
// populated before the form is submittable, in form order.
func RequiredFields() []models.FieldID {
	var out []models.FieldID
	for _, r := range rules {
		if r.Required {
			out = append(out, r.FieldID)
		}
	}
	return out
}
