package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// studentColumns is the full column set of the students table, in insert
// order (id and created_at excluded).
var studentColumns = []string{
	"student_no", "first_name", "middle_name", "last_name", "ext_name",
	"citizenship", "religion", "gender", "age",
	"email", "phone", "street", "barangay", "city", "province",
	"program", "year_level", "curriculum_code", "lrn", "date_graduated",
	"previous_school", "previous_school_address", "achievement",
	"admission_date", "school_year", "period", "section",
	"family_members", "student_subjects",
}

// nextSequenceSQL claims the next year-scoped student number sequence. The
// counter row is created on first use, seeded from the count of existing
// students carrying the year's prefix, and incremented atomically afterwards.
// Running this inside the acceptance transaction keeps concurrent acceptances
// from observing the same value.
const nextSequenceSQL = `
INSERT INTO student_number_counters (year, last_seq)
VALUES ($1, (SELECT COUNT(*) + 1 FROM students WHERE student_no LIKE $2))
ON CONFLICT (year) DO UPDATE SET last_seq = student_number_counters.last_seq + 1
RETURNING last_seq`

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func studentValues(s *models.Student) []interface{} {
	return []interface{}{
		s.StudentNo, s.FirstName, s.MiddleName, s.LastName, s.ExtName,
		s.Citizenship, s.Religion, s.Gender, s.Age,
		s.Email, s.Phone, s.Street, s.Barangay, s.City, s.Province,
		s.Program, s.YearLevel, s.CurriculumCode, s.LRN, s.DateGraduated,
		s.PreviousSchool, s.PreviousSchoolAddress, s.Achievement,
		s.AdmissionDate, s.SchoolYear, s.Period, s.Section,
		s.FamilyMembersRaw, s.StudentSubjectsRaw,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID,
		&s.StudentNo, &s.FirstName, &s.MiddleName, &s.LastName, &s.ExtName,
		&s.Citizenship, &s.Religion, &s.Gender, &s.Age,
		&s.Email, &s.Phone, &s.Street, &s.Barangay, &s.City, &s.Province,
		&s.Program, &s.YearLevel, &s.CurriculumCode, &s.LRN, &s.DateGraduated,
		&s.PreviousSchool, &s.PreviousSchoolAddress, &s.Achievement,
		&s.AdmissionDate, &s.SchoolYear, &s.Period, &s.Section,
		&s.FamilyMembersRaw, &s.StudentSubjectsRaw,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.FamilyMembers = models.DecodeFamilyMembers(s.FamilyMembersRaw)
	s.StudentSubjects = models.DecodeStudentSubjects(s.StudentSubjectsRaw)
	return s, nil
}

// NextSequenceTx claims the next student number sequence for a year within
// the given transaction.
func (r *StudentRepository) NextSequenceTx(ctx context.Context, tx pgx.Tx, year int) (int64, error) {
	prefix := models.StudentNoPrefix(year) + "%"

	var seq int64
	if err := tx.QueryRow(ctx, nextSequenceSQL, year, prefix).Scan(&seq); err != nil {
		logger.Error().Err(err).Int("year", year).Msg("Error claiming student number sequence")
		return 0, fmt.Errorf("error claiming student number sequence: %w", err)
	}

	return seq, nil
}

// CreateTx inserts a new student within a transaction and returns its id
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(studentValues(student)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrStudentNoAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(studentColumns, "created_at")...)...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return student, nil
}

// List retrieves all students ordered by last name
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(studentColumns, "created_at")...)...).
		From("students").
		OrderBy("last_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// SearchByName finds students whose first, middle or last name contains the
// query, case-insensitively, ordered by last name ascending.
func (r *StudentRepository) SearchByName(ctx context.Context, query string) ([]*models.Student, error) {
	pattern := "%" + query + "%"
	sql, args, err := r.sb.Select(append([]string{"id"}, append(studentColumns, "created_at")...)...).
		From("students").
		Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"middle_name": pattern},
			squirrel.ILike{"last_name": pattern},
		}).
		OrderBy("last_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building search students SQL")
		return nil, fmt.Errorf("failed to build search students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ClearSectionTx unassigns every student referencing a section name.
func (r *StudentRepository) ClearSectionTx(ctx context.Context, tx pgx.Tx, sectionName string) error {
	sql, args, err := r.sb.Update("students").
		Set("section", "").
		Where(squirrel.Eq{"section": sectionName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear section query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error clearing section assignment: %w", err)
	}

	return nil
}

// AssignSectionTx sets the section name and serialized subject list on the
// given students.
func (r *StudentRepository) AssignSectionTx(ctx context.Context, tx pgx.Tx, studentIDs []int64, sectionName, subjectsRaw string) error {
	if len(studentIDs) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("students").
		Set("section", sectionName).
		Set("student_subjects", subjectsRaw).
		Where(squirrel.Eq{"id": studentIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign section query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error assigning section: %w", err)
	}

	return nil
}
