package tui

import "github.com/MKhiriev/go-intake-form/models"

// groupOption pairs the stable value stored in the submission payload with the
// label shown next to the control.
type groupOption struct {
	value string
	label string
}

var radioOptions = map[models.GroupName][]groupOption{
	models.GroupGender: {
		{value: "male", label: "Male"},
		{value: "female", label: "Female"},
		{value: "nonbinary", label: "Nonbinary"},
		{value: "prefer_not_to_say", label: "Prefer not to say"},
	},
	models.GroupInsurance: {
		{value: "private", label: "Private"},
		{value: "medicare", label: "Medicare"},
		{value: "medicaid", label: "Medicaid"},
		{value: "uninsured", label: "Uninsured"},
	},
}

var checkboxOptions = map[models.GroupName][]groupOption{
	models.GroupConditions: {
		{value: "asthma", label: "Asthma"},
		{value: "diabetes", label: "Diabetes"},
		{value: "heart_disease", label: "Heart disease"},
		{value: "hypertension", label: "Hypertension"},
	},
}
