// Package format provides the input masks applied to numeric intake fields
// on every keystroke, before validation reads the value.
//
// Each mask strips everything but digits, truncates to the field's maximum
// digit count, and re-inserts literal separators at fixed offsets. Masks are
// idempotent and total: any input, including the empty string, produces some
// string and never an error.
package format

import "strings"

const (
	ssnDigits   = 9
	phoneDigits = 10
)

// SSN formats raw input as a social security number: up to nine digits
// grouped XXX-XX-XXXX.
func SSN(raw string) string {
	return group(digits(raw, ssnDigits), 3, 2, 4)
}

// Phone formats raw input as a US phone number: up to ten digits grouped
// XXX-XXX-XXXX.
func Phone(raw string) string {
	return group(digits(raw, phoneDigits), 3, 3, 4)
}

// digits extracts at most max decimal digits from s, in order.
func digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// group splits ds into runs of the given sizes joined by hyphens. A trailing
// partial run is kept as typed so the mask grows naturally under editing.
func group(ds string, sizes ...int) string {
	var parts []string
	for _, size := range sizes {
		if ds == "" {
			break
		}
		if len(ds) < size {
			size = len(ds)
		}
		parts = append(parts, ds[:size])
		ds = ds[size:]
	}
	return strings.Join(parts, "-")
}
