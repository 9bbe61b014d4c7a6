package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
	"github.com/marlon/enrollhub/internal/pkg/logger"
)

const dateLayout = "2006-01-02"

// AdmissionService defines the interface for admission operations, including
// the status transition workflow.
type AdmissionService interface {
	CreateAdmission(ctx context.Context, admission *models.Admission) (int64, error)
	GetAdmission(ctx context.Context, id int64) (*models.Admission, error)
	ListAdmissions(ctx context.Context) ([]*models.Admission, error)
	UpdateAdmission(ctx context.Context, admission *models.Admission) error
	DeleteAdmission(ctx context.Context, id int64) error
	Transition(ctx context.Context, id int64, targetStatus string) (*dto.TransitionResult, error)
}

// admissionServiceImpl implements the AdmissionService interface
type admissionServiceImpl struct {
	admissionRepo AdmissionStore
	studentRepo   StudentStore
	archiveRepo   ArchiveStore
	tx            TxRunner
	now           func() time.Time
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(admissionRepo AdmissionStore, studentRepo StudentStore, archiveRepo ArchiveStore, tx TxRunner) AdmissionService {
	return &admissionServiceImpl{
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
		archiveRepo:   archiveRepo,
		tx:            tx,
		now:           time.Now,
	}
}

// CreateAdmission stores a new application. A missing status defaults to
// pending; the family list is expected to be pre-filtered.
func (s *admissionServiceImpl) CreateAdmission(ctx context.Context, admission *models.Admission) (int64, error) {
	if admission.Status == "" {
		admission.Status = models.StatusPending
	}

	raw, err := models.EncodeFamilyMembers(admission.FamilyMembers)
	if err != nil {
		return 0, fmt.Errorf("error encoding family members: %w", err)
	}
	admission.FamilyMembersRaw = raw

	id, err := s.admissionRepo.Create(ctx, admission)
	if err != nil {
		return 0, fmt.Errorf("error creating admission: %w", err)
	}
	return id, nil
}

// GetAdmission retrieves an admission by id
func (s *admissionServiceImpl) GetAdmission(ctx context.Context, id int64) (*models.Admission, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid admission id", apperrors.ErrValidationFailed)
	}
	return s.admissionRepo.GetByID(ctx, id)
}

// ListAdmissions retrieves all pending applications
func (s *admissionServiceImpl) ListAdmissions(ctx context.Context) ([]*models.Admission, error) {
	return s.admissionRepo.List(ctx)
}

// UpdateAdmission rewrites an application's fields in place. Every row still
// in the admissions table is undecided, so no status guard is needed.
func (s *admissionServiceImpl) UpdateAdmission(ctx context.Context, admission *models.Admission) error {
	if admission.ID <= 0 {
		return fmt.Errorf("%w: invalid admission id", apperrors.ErrValidationFailed)
	}
	if admission.Status == "" {
		admission.Status = models.StatusPending
	}

	raw, err := models.EncodeFamilyMembers(admission.FamilyMembers)
	if err != nil {
		return fmt.Errorf("error encoding family members: %w", err)
	}
	admission.FamilyMembersRaw = raw

	return s.admissionRepo.Update(ctx, admission)
}

// DeleteAdmission withdraws an application
func (s *admissionServiceImpl) DeleteAdmission(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid admission id", apperrors.ErrValidationFailed)
	}
	return s.admissionRepo.Delete(ctx, id)
}

// Transition changes an admission's status. Pending updates the row in
// place; accepted moves it to the student roster; rejected moves it to the
// archive. Each move runs as a single transaction so the destination insert
// and source delete commit or roll back together.
func (s *admissionServiceImpl) Transition(ctx context.Context, id int64, targetStatus string) (*dto.TransitionResult, error) {
	status, err := models.ParseStatus(targetStatus)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.StatusAccepted:
		return s.accept(ctx, id)
	case models.StatusRejected:
		return s.reject(ctx, id)
	default:
		if err := s.admissionRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		return &dto.TransitionResult{Status: status}, nil
	}
}

// accept moves an admission into the student roster. The student number is
// claimed from the year-scoped counter inside the same transaction as the
// insert, and the admission date is stamped with the acceptance date,
// overwriting any previously supplied value.
func (s *admissionServiceImpl) accept(ctx context.Context, id int64) (*dto.TransitionResult, error) {
	admission, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := &dto.TransitionResult{Status: models.StatusAccepted}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		seq, err := s.studentRepo.NextSequenceTx(ctx, tx, today.Year())
		if err != nil {
			return err
		}

		studentNo := models.FormatStudentNo(today.Year(), seq)
		student := studentFromAdmission(admission, studentNo, today.Format(dateLayout))

		studentID, err := s.studentRepo.CreateTx(ctx, tx, student)
		if err != nil {
			return err
		}

		if err := s.admissionRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		result.StudentID = studentID
		result.StudentNo = studentNo
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Accept transition rolled back")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransitionFailed, err)
	}

	logger.Info().Int64("admissionID", id).Int64("studentID", result.StudentID).
		Str("studentNo", result.StudentNo).Msg("Admission accepted")
	return result, nil
}

// reject moves an admission into the rejection archive, preserving the
// original admission date.
func (s *admissionServiceImpl) reject(ctx context.Context, id int64) (*dto.TransitionResult, error) {
	admission, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := &dto.TransitionResult{Status: models.StatusRejected}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		archived := archiveFromAdmission(admission, today.Format(dateLayout))

		archiveID, err := s.archiveRepo.CreateTx(ctx, tx, archived)
		if err != nil {
			return err
		}

		if err := s.admissionRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		result.ArchiveID = archiveID
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Reject transition rolled back")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransitionFailed, err)
	}

	logger.Info().Int64("admissionID", id).Int64("archiveID", result.ArchiveID).Msg("Admission rejected")
	return result, nil
}

// studentFromAdmission copies an admission's fields into a new student row.
// The family blob is carried across unparsed; the subject list starts empty.
func studentFromAdmission(a *models.Admission, studentNo, admissionDate string) *models.Student {
	return &models.Student{
		StudentNo:             studentNo,
		FirstName:             a.FirstName,
		MiddleName:            a.MiddleName,
		LastName:              a.LastName,
		ExtName:               a.ExtName,
		Citizenship:           a.Citizenship,
		Religion:              a.Religion,
		Gender:                a.Gender,
		Age:                   a.Age,
		Email:                 a.Email,
		Phone:                 a.Phone,
		Street:                a.Street,
		Barangay:              a.Barangay,
		City:                  a.City,
		Province:              a.Province,
		Program:               a.Program,
		YearLevel:             a.YearLevel,
		CurriculumCode:        a.CurriculumCode,
		LRN:                   a.LRN,
		DateGraduated:         a.DateGraduated,
		PreviousSchool:        a.PreviousSchool,
		PreviousSchoolAddress: a.PreviousSchoolAddress,
		Achievement:           a.Achievement,
		AdmissionDate:         admissionDate,
		SchoolYear:            a.SchoolYear,
		Period:                a.Period,
		FamilyMembersRaw:      a.FamilyMembersRaw,
		StudentSubjectsRaw:    "[]",
	}
}

// archiveFromAdmission copies an admission's fields into a new archive row.
func archiveFromAdmission(a *models.Admission, rejectionDate string) *models.ArchivedApplication {
	return &models.ArchivedApplication{
		FirstName:             a.FirstName,
		MiddleName:            a.MiddleName,
		LastName:              a.LastName,
		ExtName:               a.ExtName,
		Citizenship:           a.Citizenship,
		Religion:              a.Religion,
		Gender:                a.Gender,
		Age:                   a.Age,
		Email:                 a.Email,
		Phone:                 a.Phone,
		Street:                a.Street,
		Barangay:              a.Barangay,
		City:                  a.City,
		Province:              a.Province,
		Program:               a.Program,
		YearLevel:             a.YearLevel,
		CurriculumCode:        a.CurriculumCode,
		LRN:                   a.LRN,
		DateGraduated:         a.DateGraduated,
		PreviousSchool:        a.PreviousSchool,
		PreviousSchoolAddress: a.PreviousSchoolAddress,
		Achievement:           a.Achievement,
		AdmissionDate:         a.AdmissionDate,
		SchoolYear:            a.SchoolYear,
		Period:                a.Period,
		RejectionDate:         rejectionDate,
		RejectionReason:       models.RejectionReason,
		FamilyMembersRaw:      a.FamilyMembersRaw,
	}
}
