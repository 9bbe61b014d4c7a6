package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// StudentService defines the interface for student roster operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	SearchStudents(ctx context.Context, query string) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
	tx          TxRunner
	now         func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, tx TxRunner) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		tx:          tx,
		now:         time.Now,
	}
}

// CreateStudent directly enrolls a student (pre-existing enrollees that never
// went through the admission workflow). A blank student number is allocated
// from the same year-scoped counter the acceptance path uses.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	familyRaw, err := models.EncodeFamilyMembers(student.FamilyMembers)
	if err != nil {
		return 0, fmt.Errorf("error encoding family members: %w", err)
	}
	student.FamilyMembersRaw = familyRaw

	subjectsRaw, err := models.EncodeStudentSubjects(student.StudentSubjects)
	if err != nil {
		return 0, fmt.Errorf("error encoding student subjects: %w", err)
	}
	student.StudentSubjectsRaw = subjectsRaw

	var id int64
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if student.StudentNo == "" {
			year := s.now().Year()
			seq, err := s.studentRepo.NextSequenceTx(ctx, tx, year)
			if err != nil {
				return err
			}
			student.StudentNo = models.FormatStudentNo(year, seq)
		}

		var err error
		id, err = s.studentRepo.CreateTx(ctx, tx, student)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetStudent retrieves a student by id
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student id", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves all students
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

// SearchStudents finds students by a case-insensitive substring match over
// the name fields
func (s *studentServiceImpl) SearchStudents(ctx context.Context, query string) ([]*models.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.SearchByName(ctx, query)
}
