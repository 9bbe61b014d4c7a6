package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// SectionService defines the interface for section operations
type SectionService interface {
	CreateSection(ctx context.Context, req *dto.SectionRequest) (*models.Section, error)
	GetSection(ctx context.Context, id int64) (*models.Section, error)
	ListSections(ctx context.Context) ([]*models.Section, error)
	UpdateSection(ctx context.Context, id int64, req *dto.SectionRequest) (*models.Section, error)
	GetSuccession(ctx context.Context, gradeLabel, name string) (*models.Succession, error)
	SetSuccession(ctx context.Context, gradeLabel, name string, req *dto.SuccessionRequest) error
	ClearSuccession(ctx context.Context, gradeLabel, name string) error
}

// sectionServiceImpl implements the SectionService interface
type sectionServiceImpl struct {
	sectionRepo SectionStore
	studentRepo StudentStore
	tx          TxRunner
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo SectionStore, studentRepo StudentStore, tx TxRunner) SectionService {
	return &sectionServiceImpl{
		sectionRepo: sectionRepo,
		studentRepo: studentRepo,
		tx:          tx,
	}
}

// CreateSection creates a section and optionally assigns an initial roster
// and subject list.
func (s *sectionServiceImpl) CreateSection(ctx context.Context, req *dto.SectionRequest) (*models.Section, error) {
	grade, err := models.ParseGradeLevel(req.GradeLevel)
	if err != nil {
		return nil, err
	}

	section := &models.Section{
		GradeLevel: grade,
		Name:       req.Name,
		SchoolYear: req.SchoolYear,
		Adviser:    req.Adviser,
	}

	id, err := s.sectionRepo.Create(ctx, section)
	if err != nil {
		return nil, err
	}
	section.ID = id

	if len(req.StudentIDs) > 0 {
		subjectsRaw, err := models.EncodeStudentSubjects(req.Subjects)
		if err != nil {
			return nil, fmt.Errorf("error encoding subjects: %w", err)
		}

		err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return s.studentRepo.AssignSectionTx(ctx, tx, req.StudentIDs, section.Name, subjectsRaw)
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("sectionID", id).Str("name", section.Name).Int("gradeLevel", grade).Msg("Section created")
	return section, nil
}

// GetSection retrieves a section by id
func (s *sectionServiceImpl) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid section id", apperrors.ErrValidationFailed)
	}
	return s.sectionRepo.GetByID(ctx, id)
}

// ListSections retrieves all sections
func (s *sectionServiceImpl) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.sectionRepo.List(ctx)
}

// UpdateSection rewrites a section and replaces its roster. Students
// referencing the old name are unassigned first, then exactly the supplied
// student ids get the new name and subject list; students omitted from the
// set stay unassigned. The whole replacement is one transaction.
func (s *sectionServiceImpl) UpdateSection(ctx context.Context, id int64, req *dto.SectionRequest) (*models.Section, error) {
	grade, err := models.ParseGradeLevel(req.GradeLevel)
	if err != nil {
		return nil, err
	}

	existing, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subjectsRaw, err := models.EncodeStudentSubjects(req.Subjects)
	if err != nil {
		return nil, fmt.Errorf("error encoding subjects: %w", err)
	}

	updated := &models.Section{
		ID:         id,
		GradeLevel: grade,
		Name:       req.Name,
		SchoolYear: req.SchoolYear,
		Adviser:    req.Adviser,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.ClearSectionTx(ctx, tx, existing.Name); err != nil {
			return err
		}

		if err := s.sectionRepo.UpdateTx(ctx, tx, updated); err != nil {
			return err
		}

		return s.studentRepo.AssignSectionTx(ctx, tx, req.StudentIDs, updated.Name, subjectsRaw)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("sectionID", id).Str("name", updated.Name).
		Int("assigned", len(req.StudentIDs)).Msg("Section updated")
	return updated, nil
}

// GetSuccession returns a section's declared successor, or nil when none is
// set.
func (s *sectionServiceImpl) GetSuccession(ctx context.Context, gradeLabel, name string) (*models.Succession, error) {
	grade, err := models.ParseGradeLevel(gradeLabel)
	if err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.GetByGradeAndName(ctx, grade, name)
	if err != nil {
		return nil, err
	}

	if section.NextGradeLevel == nil || section.NextSectionName == nil {
		return nil, nil
	}

	return &models.Succession{
		NextGradeLevel:  *section.NextGradeLevel,
		NextSectionName: *section.NextSectionName,
	}, nil
}

// SetSuccession records a section's declared successor. Purely declarative;
// nothing acts on it.
func (s *sectionServiceImpl) SetSuccession(ctx context.Context, gradeLabel, name string, req *dto.SuccessionRequest) error {
	grade, err := models.ParseGradeLevel(gradeLabel)
	if err != nil {
		return err
	}

	nextGrade, err := models.ParseGradeLevel(req.NextGradeLevel)
	if err != nil {
		return err
	}

	return s.sectionRepo.SetSuccession(ctx, grade, name, &models.Succession{
		NextGradeLevel:  nextGrade,
		NextSectionName: req.NextSectionName,
	})
}

// ClearSuccession removes a section's declared successor
func (s *sectionServiceImpl) ClearSuccession(ctx context.Context, gradeLabel, name string) error {
	grade, err := models.ParseGradeLevel(gradeLabel)
	if err != nil {
		return err
	}

	return s.sectionRepo.ClearSuccession(ctx, grade, name)
}
