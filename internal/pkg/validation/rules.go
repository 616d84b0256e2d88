package validation

import (
	"strings"
	"time"
)

// Field length bounds shared by the entity rule sets
var (
	TeacherNameMaxLength = 100
	CourseNameMaxLength  = 100
	StudentNameMaxLength = 50
	StudentCodeMaxLength = 30
)

// DateFormat is the wire format for calendar dates (birth dates,
// enrollment dates).
const DateFormat = "2006-01-02"

// RequiredString checks that a value is non-empty after trimming
func RequiredString(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxLength checks that a value does not exceed max characters.
// Counted in runes so multi-byte names are not penalized.
func MaxLength(value string, max int) bool {
	return len([]rune(value)) <= max
}

// ParseDate parses a calendar date in DateFormat
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time as a calendar date in DateFormat
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
