package models

// FieldID names one independently validated free-text input of the intake
// form. Values are stable identifiers shared by the rules table, the error
// map, the display adapter, and the submission payload.
type FieldID string

const (
	FieldFirstName       FieldID = "first_name"
	FieldMiddleInitial   FieldID = "middle_initial"
	FieldLastName        FieldID = "last_name"
	FieldDateOfBirth     FieldID = "date_of_birth"
	FieldSSN             FieldID = "ssn"
	FieldAddress1        FieldID = "address1"
	FieldAddress2        FieldID = "address2"
	FieldCity            FieldID = "city"
	FieldState           FieldID = "state"
	FieldZip             FieldID = "zip"
	FieldEmail           FieldID = "email"
	FieldPhone           FieldID = "phone"
	FieldUserID          FieldID = "user_id"
	FieldPassword        FieldID = "password"
	FieldConfirmPassword FieldID = "confirm_password"
)

// GroupName names a radio-button or checkbox group. A radio group carries a
// single derived boolean ("some option selected") instead of a raw text value.
type GroupName string

const (
	// GroupGender is a required radio group in the Personal section.
	GroupGender GroupName = "gender"

	// GroupInsurance is a required radio group in the Health section.
	GroupInsurance GroupName = "insurance"

	// GroupConditions is an optional checkbox group in the Health section.
	// It is never validated; its selections appear in the review summary and
	// the submission payload only.
	GroupConditions GroupName = "conditions"
)

// Section identifies one logical block of the intake form. The review summary
// reports one pass/fail verdict per section.
type Section string

const (
	SectionPersonal Section = "Personal"
	SectionAddress  Section = "Address"
	SectionContact  Section = "Contact"
	SectionHealth   Section = "Health"
	SectionAccount  Section = "Account"
)

// Sections lists the review sections in display order.
func Sections() []Section {
	return []Section{SectionPersonal, SectionAddress, SectionContact, SectionHealth, SectionAccount}
}
