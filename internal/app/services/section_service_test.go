package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

func TestCreateSectionParsesGradeLabel(t *testing.T) {
	sections := newFakeSectionStore()
	students := newFakeStudentStore()
	svc := NewSectionService(sections, students, &fakeTxRunner{})

	section, err := svc.CreateSection(context.Background(), &dto.SectionRequest{
		GradeLevel: "Grade 7",
		Name:       "Sampaguita",
		SchoolYear: "2025-2026",
		Adviser:    "Mrs. Lopez",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, section.GradeLevel)
	assert.NotZero(t, section.ID)
	assert.Empty(t, students.assigned, "no roster supplied, no assignment expected")
}

func TestCreateSectionAssignsInitialRoster(t *testing.T) {
	sections := newFakeSectionStore()
	students := newFakeStudentStore()
	tx := &fakeTxRunner{}
	svc := NewSectionService(sections, students, tx)

	_, err := svc.CreateSection(context.Background(), &dto.SectionRequest{
		GradeLevel: "8",
		Name:       "Narra",
		StudentIDs: []int64{4, 5, 6},
		Subjects:   []models.StudentSubject{{Subject: "Math", Teacher: "Mr. Cruz"}},
	})
	require.NoError(t, err)

	require.Len(t, students.assigned, 1)
	assert.Equal(t, []int64{4, 5, 6}, students.assigned[0].ids)
	assert.Equal(t, "Narra", students.assigned[0].sectionName)
	assert.Contains(t, students.assigned[0].subjectsRaw, "Math")
	assert.Equal(t, 1, tx.calls)
}

func TestCreateSectionInvalidGrade(t *testing.T) {
	svc := NewSectionService(newFakeSectionStore(), newFakeStudentStore(), &fakeTxRunner{})

	for _, label := range []string{"", "seven", "Grade -1", "0"} {
		_, err := svc.CreateSection(context.Background(), &dto.SectionRequest{GradeLevel: label, Name: "X"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidGradeLevel, "label %q", label)
	}
}

func TestUpdateSectionReplacesRoster(t *testing.T) {
	sections := newFakeSectionStore(&models.Section{ID: 1, GradeLevel: 7, Name: "Sampaguita"})
	students := newFakeStudentStore()
	tx := &fakeTxRunner{}
	svc := NewSectionService(sections, students, tx)

	updated, err := svc.UpdateSection(context.Background(), 1, &dto.SectionRequest{
		GradeLevel: "7",
		Name:       "Ilang-Ilang",
		StudentIDs: []int64{10, 11},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ilang-Ilang", updated.Name)
	// old roster is unassigned before the new one is applied
	require.Equal(t, []string{"Sampaguita"}, students.cleared)
	require.Len(t, students.assigned, 1)
	assert.Equal(t, []int64{10, 11}, students.assigned[0].ids)
	assert.Equal(t, "Ilang-Ilang", students.assigned[0].sectionName)
	assert.Equal(t, 1, tx.calls)
}

func TestUpdateSectionMissing(t *testing.T) {
	svc := NewSectionService(newFakeSectionStore(), newFakeStudentStore(), &fakeTxRunner{})

	_, err := svc.UpdateSection(context.Background(), 99, &dto.SectionRequest{GradeLevel: "7", Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}

func TestSuccessionRoundTrip(t *testing.T) {
	sections := newFakeSectionStore(&models.Section{ID: 1, GradeLevel: 7, Name: "Sampaguita"})
	svc := NewSectionService(sections, newFakeStudentStore(), &fakeTxRunner{})

	// unset succession reads back as nil, not an error
	succ, err := svc.GetSuccession(context.Background(), "7", "Sampaguita")
	require.NoError(t, err)
	assert.Nil(t, succ)

	err = svc.SetSuccession(context.Background(), "7", "Sampaguita", &dto.SuccessionRequest{
		NextGradeLevel:  "Grade 8",
		NextSectionName: "Narra",
	})
	require.NoError(t, err)

	succ, err = svc.GetSuccession(context.Background(), "Grade 7", "Sampaguita")
	require.NoError(t, err)
	require.NotNil(t, succ)
	assert.Equal(t, 8, succ.NextGradeLevel)
	assert.Equal(t, "Narra", succ.NextSectionName)

	require.NoError(t, svc.ClearSuccession(context.Background(), "7", "Sampaguita"))

	succ, err = svc.GetSuccession(context.Background(), "7", "Sampaguita")
	require.NoError(t, err)
	assert.Nil(t, succ)
}

func TestSuccessionUnknownSection(t *testing.T) {
	svc := NewSectionService(newFakeSectionStore(), newFakeStudentStore(), &fakeTxRunner{})

	_, err := svc.GetSuccession(context.Background(), "7", "Ghost")
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}
