package models

// ReviewItem is one line of the review summary: a single field or group
// rendered with its current (display-safe) value and a pass/fail verdict.
type ReviewItem struct {
	// Label is the human-readable name of the item (e.g. "Date of birth").
	Label string `json:"label"`

	// Value is the display representation of the current value. Passwords are
	// masked by character count and never appear in clear text.
	Value string `json:"value"`

	// Valid reports whether the item passed its rule at review time.
	Valid bool `json:"valid"`
}

// ReviewSection groups the review items of one logical form section together
// with a section-local verdict.
type ReviewSection struct {
	// Section is the logical block the items belong to.
	Section Section `json:"section"`

	// Items are the section's fields and groups in form order.
	Items []ReviewItem `json:"items"`

	// Valid is true iff every item in the section passed.
	Valid bool `json:"valid"`
}

// ReviewSummary is the structured result of a full out-of-band re-validation,
// produced on the Editing → Reviewing transition and handed to the display
// adapter for rendering.
type ReviewSummary struct {
	// Sections holds one entry per form section in display order.
	Sections []ReviewSection `json:"sections"`

	// Valid is true iff every section passed; it mirrors "error map empty"
	// for the values current at review time.
	Valid bool `json:"valid"`
}
