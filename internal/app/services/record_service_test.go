package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

func TestGetRecordRoutesByStatus(t *testing.T) {
	admissions := newFakeAdmissionStore(&models.Admission{ID: 1, FirstName: "Pending", LastName: "Person"})
	students := newFakeStudentStore(&models.Student{ID: 1, FirstName: "Accepted", LastName: "Person", StudentNo: "A25-0001"})
	archive := newFakeArchiveStore()
	_, err := archive.CreateTx(context.Background(), nil, &models.ArchivedApplication{FirstName: "Rejected", LastName: "Person"})
	require.NoError(t, err)

	svc := NewRecordService(admissions, students, archive)

	rec, err := svc.GetRecord(context.Background(), "pending", 1)
	require.NoError(t, err)
	assert.Equal(t, "Pending", rec.(*models.Admission).FirstName)

	rec, err = svc.GetRecord(context.Background(), "accepted", 1)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", rec.(*models.Student).FirstName)

	rec, err = svc.GetRecord(context.Background(), "rejected", 1)
	require.NoError(t, err)
	assert.Equal(t, "Rejected", rec.(*models.ArchivedApplication).FirstName)
}

func TestGetRecordRejectsUnknownTag(t *testing.T) {
	svc := NewRecordService(newFakeAdmissionStore(), newFakeStudentStore(), newFakeArchiveStore())

	for _, tag := range []string{"archived", "students", "", "Accepted"} {
		_, err := svc.GetRecord(context.Background(), tag, 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "tag %q", tag)
	}
}

func TestGetRecordMissingRow(t *testing.T) {
	svc := NewRecordService(newFakeAdmissionStore(), newFakeStudentStore(), newFakeArchiveStore())

	_, err := svc.GetRecord(context.Background(), "accepted", 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
