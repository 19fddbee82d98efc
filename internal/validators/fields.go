package validators

import (
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-intake-form/models"
)

var (
	nameRe          = regexp.MustCompile(`^[A-Za-z'-]{1,30}$`)
	middleInitialRe = regexp.MustCompile(`^[A-Za-z]$`)
	dateRe          = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	ssnRe           = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	zipRe           = regexp.MustCompile(`^\d{5}$`)
	emailRe         = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRe         = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	userIDRe        = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{4,19}$`)

	hasUpperRe = regexp.MustCompile(`[A-Z]`)
	hasLowerRe = regexp.MustCompile(`[a-z]`)
	hasDigitRe = regexp.MustCompile(`[0-9]`)
)

// maxDOBAge bounds how far in the past a date of birth may lie, in years.
const maxDOBAge = 120

// ValidName reports whether value is an acceptable first or last name:
// 1 to 30 characters drawn from letters, apostrophes, and hyphens.
func ValidName(value string) bool {
	return nameRe.MatchString(value)
}

// ValidMiddleInitial reports whether value is empty (the field is optional)
// or exactly one letter.
func ValidMiddleInitial(value string) bool {
	return value == "" || middleInitialRe.MatchString(value)
}

// ValidDateOfBirth reports whether value is an MM/DD/YYYY date that denotes a
// real calendar day, is not after now's local date, and is not earlier than
// exactly maxDOBAge years before it. Time-of-day is ignored on both sides.
func ValidDateOfBirth(value string, now time.Time) bool {
	m := dateRe.FindStringSubmatch(value)
	if m == nil {
		return false
	}

	// The regexp guarantees the submatches parse.
	month := atoi2(m[1])
	day := atoi2(m[2])
	year := atoi4(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	// time.Date normalizes out-of-range days (02/30 becomes 03/01), so a
	// round-trip mismatch means the calendar day does not exist.
	dob := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if dob.Year() != year || dob.Month() != time.Month(month) || dob.Day() != day {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dob.After(today) {
		return false
	}
	if dob.Before(today.AddDate(-maxDOBAge, 0, 0)) {
		return false
	}

	return true
}

// ValidSSN reports whether value is a fully formatted social security number,
// DDD-DD-DDDD.
func ValidSSN(value string) bool {
	return ssnRe.MatchString(value)
}

// ValidAddressLine1 reports whether value is 2 to 30 characters. The same
// rule applies to the city field.
func ValidAddressLine1(value string) bool {
	return len(value) >= 2 && len(value) <= 30
}

// ValidAddressLine2 reports whether value is empty (optional) or 2 to 30
// characters.
func ValidAddressLine2(value string) bool {
	return value == "" || ValidAddressLine1(value)
}

// ValidCity reports whether value is an acceptable city name.
func ValidCity(value string) bool {
	return ValidAddressLine1(value)
}

// ValidState reports whether a state has been selected.
func ValidState(value string) bool {
	return value != ""
}

// ValidZip reports whether value is exactly five digits.
func ValidZip(value string) bool {
	return zipRe.MatchString(value)
}

// ValidEmail reports whether value is a plausible email address: a non-empty
// local part of alphanumerics and ._%+-, an @, a domain of alphanumerics,
// dots, and hyphens, and a TLD of at least two letters.
func ValidEmail(value string) bool {
	return emailRe.MatchString(value)
}

// ValidPhone reports whether value is empty (the field is optional) or a
// fully formatted phone number, DDD-DDD-DDDD.
func ValidPhone(value string) bool {
	return value == "" || phoneRe.MatchString(value)
}

// ValidUserID reports whether value is 5 to 20 characters, starts with a
// letter, and continues with alphanumerics, hyphens, or underscores.
func ValidUserID(value string) bool {
	return userIDRe.MatchString(value)
}

// ValidPassword reports whether value is at least 8 characters with at least
// one uppercase letter, one lowercase letter, and one digit, and does not
// case-insensitively equal the current user ID read from form.
func ValidPassword(value string, form Snapshot) bool {
	if len(value) < 8 {
		return false
	}
	if !hasUpperRe.MatchString(value) || !hasLowerRe.MatchString(value) || !hasDigitRe.MatchString(value) {
		return false
	}
	return !strings.EqualFold(value, form.Value(models.FieldUserID))
}

// ValidConfirmPassword reports whether value is non-empty and exactly equal
// to the current password read from form. Two empty fields never match.
func ValidConfirmPassword(value string, form Snapshot) bool {
	return value != "" && value == form.Value(models.FieldPassword)
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func atoi4(s string) int {
	return atoi2(s[:2])*100 + atoi2(s[2:])
}
