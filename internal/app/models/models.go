package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// Status is the decision state of an admission application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// RejectionReason is recorded on every archived application. Caller-supplied
// reasons are not accepted in this version.
const RejectionReason = "Application rejected by admin"

// ParseStatus validates a status tag against the closed set. Tags are
// case-sensitive lowercase strings.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, s)
	}
}

// FormatStudentNo builds a year-scoped student number, e.g. A25-0004.
func FormatStudentNo(year int, seq int64) string {
	return fmt.Sprintf("A%02d-%04d", year%100, seq)
}

// StudentNoPrefix returns the student number prefix for a year, e.g. "A25-".
func StudentNoPrefix(year int) string {
	return fmt.Sprintf("A%02d-", year%100)
}

// ParseGradeLevel parses a grade-level label. Both bare numbers ("7") and
// labeled forms ("Grade 7") are accepted.
func ParseGradeLevel(label string) (int, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimPrefix(s, "Grade ")
	grade, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || grade <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidGradeLevel, label)
	}
	return grade, nil
}
