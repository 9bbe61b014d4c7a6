package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "accepted", "rejected"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	// the set is closed and case-sensitive
	for _, invalid := range []string{"", "Pending", "ACCEPTED", "approved", "archived", "pending "} {
		_, err := ParseStatus(invalid)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "input %q", invalid)
	}
}

func TestFormatStudentNo(t *testing.T) {
	assert.Equal(t, "A25-0004", FormatStudentNo(2025, 4))
	assert.Equal(t, "A25-0012", FormatStudentNo(2025, 12))
	assert.Equal(t, "A99-0001", FormatStudentNo(1999, 1))
	assert.Equal(t, "A00-0001", FormatStudentNo(2100, 1))
	// sequences past 9999 widen rather than truncate
	assert.Equal(t, "A25-10000", FormatStudentNo(2025, 10000))
}

func TestStudentNoPrefix(t *testing.T) {
	assert.Equal(t, "A25-", StudentNoPrefix(2025))
	assert.Equal(t, "A07-", StudentNoPrefix(2007))
}

func TestParseGradeLevel(t *testing.T) {
	for input, want := range map[string]int{
		"7":        7,
		"Grade 7":  7,
		" Grade 7": 7,
		"10":       10,
		"Grade 12": 12,
	} {
		got, err := ParseGradeLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, invalid := range []string{"", "seven", "Grade", "Grade seven", "0", "-3"} {
		_, err := ParseGradeLevel(invalid)
		assert.ErrorIs(t, err, apperrors.ErrInvalidGradeLevel, "input %q", invalid)
	}
}
