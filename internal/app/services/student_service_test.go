package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

func newStudentServiceForTest(students *fakeStudentStore, tx *fakeTxRunner) *studentServiceImpl {
	return &studentServiceImpl{
		studentRepo: students,
		tx:          tx,
		now:         fixedClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func TestCreateStudentAllocatesNumberWhenBlank(t *testing.T) {
	students := newFakeStudentStore()
	students.nextSeq = 11
	svc := newStudentServiceForTest(students, &fakeTxRunner{})

	student := &models.Student{FirstName: "Liza", LastName: "Santos"}
	id, err := svc.CreateStudent(context.Background(), student)
	require.NoError(t, err)
	require.NotZero(t, id)

	assert.Equal(t, "A25-0012", student.StudentNo)
	assert.Equal(t, "[]", student.FamilyMembersRaw)
	assert.Equal(t, "[]", student.StudentSubjectsRaw)
}

func TestCreateStudentKeepsSuppliedNumber(t *testing.T) {
	students := newFakeStudentStore()
	svc := newStudentServiceForTest(students, &fakeTxRunner{})

	student := &models.Student{FirstName: "Liza", LastName: "Santos", StudentNo: "A24-0100"}
	_, err := svc.CreateStudent(context.Background(), student)
	require.NoError(t, err)

	assert.Equal(t, "A24-0100", student.StudentNo)
	assert.Zero(t, students.nextSeq, "counter must not be touched for explicit numbers")
}

func TestSearchStudentsRejectsEmptyQuery(t *testing.T) {
	svc := newStudentServiceForTest(newFakeStudentStore(), &fakeTxRunner{})

	for _, q := range []string{"", "   ", "\t"} {
		_, err := svc.SearchStudents(context.Background(), q)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "query %q", q)
	}
}

func TestGetStudentInvalidID(t *testing.T) {
	svc := newStudentServiceForTest(newFakeStudentStore(), &fakeTxRunner{})

	_, err := svc.GetStudent(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
