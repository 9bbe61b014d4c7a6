package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newAdmissionServiceForTest(admissions *fakeAdmissionStore, students *fakeStudentStore, archive *fakeArchiveStore, tx *fakeTxRunner) *admissionServiceImpl {
	return &admissionServiceImpl{
		admissionRepo: admissions,
		studentRepo:   students,
		archiveRepo:   archive,
		tx:            tx,
		now:           fixedClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func pendingAdmission(id int64) *models.Admission {
	return &models.Admission{
		ID:               id,
		FirstName:        "Juan",
		LastName:         "Dela Cruz",
		Status:           models.StatusPending,
		AdmissionDate:    "2025-05-20",
		SchoolYear:       "2025-2026",
		FamilyMembersRaw: `[{"relation":"Mother","name":"Maria Dela Cruz"}]`,
	}
}

func TestTransitionAcceptMovesAdmissionToRoster(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(7))
	students := newFakeStudentStore()
	students.nextSeq = 3 // three students already accepted this year
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	result, err := svc.Transition(context.Background(), 7, "accepted")
	require.NoError(t, err)

	assert.Equal(t, models.StatusAccepted, result.Status)
	assert.Equal(t, "A25-0004", result.StudentNo)
	require.NotZero(t, result.StudentID)

	student, err := students.GetByID(context.Background(), result.StudentID)
	require.NoError(t, err)
	assert.Equal(t, "Juan", student.FirstName)
	assert.Equal(t, "A25-0004", student.StudentNo)
	// acceptance stamps the decision date, overwriting the submitted one
	assert.Equal(t, "2025-06-01", student.AdmissionDate)
	assert.Equal(t, `[{"relation":"Mother","name":"Maria Dela Cruz"}]`, student.FamilyMembersRaw)
	assert.Equal(t, "[]", student.StudentSubjectsRaw)

	// source row is gone; the new id is the only handle left
	_, err = admissions.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)
	assert.Equal(t, []int64{7}, admissions.deletedTx)
	assert.Equal(t, 1, tx.calls)
}

func TestTransitionRejectArchivesAdmission(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(9))
	students := newFakeStudentStore()
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	result, err := svc.Transition(context.Background(), 9, "rejected")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, result.Status)
	require.NotZero(t, result.ArchiveID)
	assert.Zero(t, result.StudentID)

	archived, err := archive.GetByID(context.Background(), result.ArchiveID)
	require.NoError(t, err)
	assert.Equal(t, "Dela Cruz", archived.LastName)
	assert.Equal(t, models.RejectionReason, archived.RejectionReason)
	assert.Equal(t, "2025-06-01", archived.RejectionDate)
	// the original admission date is preserved on rejection
	assert.Equal(t, "2025-05-20", archived.AdmissionDate)

	_, err = admissions.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)
}

func TestTransitionPendingUpdatesInPlace(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(3))
	students := newFakeStudentStore()
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	result, err := svc.Transition(context.Background(), 3, "pending")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, result.Status)
	assert.Equal(t, models.StatusPending, admissions.updatedStatus[3])
	// no table migration happens for pending
	assert.Zero(t, tx.calls)
	assert.Empty(t, students.students)
	assert.Empty(t, archive.archived)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(3))
	students := newFakeStudentStore()
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	for _, status := range []string{"approved", "ACCEPTED", "Pending", "", "deleted"} {
		_, err := svc.Transition(context.Background(), 3, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %q", status)
	}

	// nothing moved, nothing updated
	assert.Zero(t, tx.calls)
	assert.Empty(t, admissions.updatedStatus)
	_, err := admissions.GetByID(context.Background(), 3)
	assert.NoError(t, err)
}

func TestTransitionMissingAdmission(t *testing.T) {
	svc := newAdmissionServiceForTest(newFakeAdmissionStore(), newFakeStudentStore(), newFakeArchiveStore(), &fakeTxRunner{})

	_, err := svc.Transition(context.Background(), 42, "accepted")
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)
}

func TestTransitionAcceptRollsBackOnInsertFailure(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(7))
	students := newFakeStudentStore()
	students.createTxErr = errors.New("unique constraint violation")
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	_, err := svc.Transition(context.Background(), 7, "accepted")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransitionFailed)

	// the admission survives a failed move
	_, err = admissions.GetByID(context.Background(), 7)
	assert.NoError(t, err)
}

func TestTransitionRejectRollsBackOnDeleteFailure(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(9))
	admissions.deleteTxErr = errors.New("connection reset")
	students := newFakeStudentStore()
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	_, err := svc.Transition(context.Background(), 9, "rejected")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransitionFailed)
}

func TestCreateAdmissionDefaultsToPending(t *testing.T) {
	admissions := newFakeAdmissionStore()
	svc := newAdmissionServiceForTest(admissions, newFakeStudentStore(), newFakeArchiveStore(), &fakeTxRunner{})

	id, err := svc.CreateAdmission(context.Background(), &models.Admission{
		FirstName: "Ana",
		LastName:  "Reyes",
	})
	require.NoError(t, err)

	created, err := admissions.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "[]", created.FamilyMembersRaw)
}

func TestStudentNumberFollowsAcceptanceCount(t *testing.T) {
	admissions := newFakeAdmissionStore(pendingAdmission(1), pendingAdmission(2))
	students := newFakeStudentStore()
	archive := newFakeArchiveStore()
	tx := &fakeTxRunner{}

	svc := newAdmissionServiceForTest(admissions, students, archive, tx)

	first, err := svc.Transition(context.Background(), 1, "accepted")
	require.NoError(t, err)
	second, err := svc.Transition(context.Background(), 2, "accepted")
	require.NoError(t, err)

	assert.Equal(t, "A25-0001", first.StudentNo)
	assert.Equal(t, "A25-0002", second.StudentNo)
}
