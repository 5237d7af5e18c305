// Package validate holds the pure input checks shared by every write path.
// The HTTP handlers are the enforcement point; clients may pre-check with
// the same rules but are advisory only.
package validate

import (
	"regexp"
	"strings"
	"time"
)

// MinStudentAge is the youngest admissible student in years.
const MinStudentAge = 12

var (
	phoneIntl  = regexp.MustCompile(`^\+254\d{9}$`)
	phoneLocal = regexp.MustCompile(`^07\d{8}$`)
	idNumber   = regexp.MustCompile(`^[A-Za-z0-9]{7,12}$`)
)

func stripPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(phone)
}

// KenyanPhone accepts the empty string, +254 followed by 9 digits, or 07
// followed by 8 digits. Spaces and dashes are ignored.
func KenyanPhone(phone string) bool {
	if phone == "" {
		return true
	}
	cleaned := stripPhone(phone)
	return phoneIntl.MatchString(cleaned) || phoneLocal.MatchString(cleaned)
}

// FormatKenyanPhone canonicalizes the local 07XXXXXXXX form into
// +254XXXXXXXX. Any other input comes back unchanged apart from stripped
// separators on already-international numbers.
func FormatKenyanPhone(phone string) string {
	cleaned := stripPhone(strings.TrimSpace(phone))
	if phoneLocal.MatchString(cleaned) {
		return "+254" + cleaned[1:]
	}
	if phoneIntl.MatchString(cleaned) {
		return cleaned
	}
	return phone
}

// IDNumber accepts exactly 7-12 alphanumeric characters.
func IDNumber(id string) bool {
	return idNumber.MatchString(id)
}

// LatestDateOfBirth is the newest date of birth that still satisfies the
// minimum age: today minus MinStudentAge years.
func LatestDateOfBirth(now time.Time) time.Time {
	return now.AddDate(-MinStudentAge, 0, 0)
}

// MeetsAgeRequirement reports whether a yyyy-mm-dd date of birth implies an
// age of at least MinStudentAge. Empty is allowed; an unparseable date is
// not.
func MeetsAgeRequirement(dateOfBirth string, now time.Time) bool {
	if dateOfBirth == "" {
		return true
	}
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return false
	}
	return !dob.After(LatestDateOfBirth(now))
}
