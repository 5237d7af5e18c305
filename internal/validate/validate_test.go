package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKenyanPhone(t *testing.T) {
	valid := []string{
		"",
		"+254712345678",
		"0712345678",
		"0712 345 678",
		"07-1234-5678",
		"+254 712 345 678",
	}
	for _, phone := range valid {
		require.True(t, KenyanPhone(phone), "expected valid: %q", phone)
	}

	invalid := []string{
		"071234567",     // too short
		"07123456789",   // too long
		"+25471234567",  // 8 digits after prefix
		"+2547123456789",
		"0812345678",    // wrong local prefix
		"712345678",
		"+255712345678", // wrong country
		"07123A5678",
	}
	for _, phone := range invalid {
		require.False(t, KenyanPhone(phone), "expected invalid: %q", phone)
	}
}

func TestFormatKenyanPhone(t *testing.T) {
	// Every 07XXXXXXXX number becomes +254 plus its last 9 digits.
	require.Equal(t, "+254712345678", FormatKenyanPhone("0712345678"))
	require.Equal(t, "+254701000000", FormatKenyanPhone("0701 000 000"))

	// Already-international numbers are only stripped of separators.
	require.Equal(t, "+254712345678", FormatKenyanPhone("+254 712-345-678"))

	// Anything else passes through unchanged.
	for _, phone := range []string{"", "12345", "0812345678", "not a phone"} {
		require.Equal(t, phone, FormatKenyanPhone(phone))
	}
}

func TestIDNumber(t *testing.T) {
	require.True(t, IDNumber("1234567"))
	require.True(t, IDNumber("123456789012"))
	require.True(t, IDNumber("AB12345"))
	require.True(t, IDNumber("abc1234XYZ"))

	require.False(t, IDNumber(""))
	require.False(t, IDNumber("123456"))        // 6 chars
	require.False(t, IDNumber("1234567890123")) // 13 chars
	require.False(t, IDNumber("1234-567"))
	require.False(t, IDNumber("1234 567"))
	require.False(t, IDNumber("一二三四五六七"))
}

func TestMeetsAgeRequirement(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.Equal(t, time.Date(2014, 8, 30, 12, 0, 0, 0, time.UTC), LatestDateOfBirth(now))

	require.True(t, MeetsAgeRequirement("2014-08-30", now)) // exactly 12
	require.True(t, MeetsAgeRequirement("2000-01-01", now))
	require.True(t, MeetsAgeRequirement("", now))

	require.False(t, MeetsAgeRequirement("2014-08-31", now)) // one day short
	require.False(t, MeetsAgeRequirement("2020-05-05", now))
	require.False(t, MeetsAgeRequirement("30/08/2000", now)) // bad format
}
