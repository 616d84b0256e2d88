package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequiredString(t *testing.T) {
	assert.True(t, RequiredString("x"))
	assert.True(t, RequiredString(" x "))
	assert.False(t, RequiredString(""))
	assert.False(t, RequiredString("   "))
	assert.False(t, RequiredString("\t\n"))
}

func TestMaxLengthCountsRunes(t *testing.T) {
	assert.True(t, MaxLength("abc", 3))
	assert.False(t, MaxLength("abcd", 3))
	// Multi-byte characters count as one
	assert.True(t, MaxLength("äöü", 3))
	assert.False(t, MaxLength("äöüß", 3))
}

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2010-04-21")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2010, 4, 21, 0, 0, 0, 0, time.UTC), parsed)

	for _, bad := range []string{"", "21-04-2010", "2010/04/21", "2010-13-01", "not-a-date"} {
		_, ok := ParseDate(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	formatted := FormatDate(d)
	assert.Equal(t, "2026-01-15", formatted)

	parsed, ok := ParseDate(formatted)
	assert.True(t, ok)
	assert.Equal(t, d, parsed)
}
