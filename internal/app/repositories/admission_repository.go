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

// admissionColumns is the full column set of the admissions table, in
// insert order (id and created_at excluded).
var admissionColumns = []string{
	"first_name", "middle_name", "last_name", "ext_name",
	"citizenship", "religion", "gender", "age",
	"email", "phone", "street", "barangay", "city", "province",
	"program", "year_level", "curriculum_code", "lrn", "date_graduated",
	"previous_school", "previous_school_address", "achievement",
	"admission_date", "school_year", "period", "status", "family_members",
}

// AdmissionRepository handles admission database operations
type AdmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func admissionValues(a *models.Admission) []interface{} {
	return []interface{}{
		a.FirstName, a.MiddleName, a.LastName, a.ExtName,
		a.Citizenship, a.Religion, a.Gender, a.Age,
		a.Email, a.Phone, a.Street, a.Barangay, a.City, a.Province,
		a.Program, a.YearLevel, a.CurriculumCode, a.LRN, a.DateGraduated,
		a.PreviousSchool, a.PreviousSchoolAddress, a.Achievement,
		a.AdmissionDate, a.SchoolYear, a.Period, string(a.Status), a.FamilyMembersRaw,
	}
}

func scanAdmission(row pgx.Row) (*models.Admission, error) {
	a := &models.Admission{}
	err := row.Scan(
		&a.ID,
		&a.FirstName, &a.MiddleName, &a.LastName, &a.ExtName,
		&a.Citizenship, &a.Religion, &a.Gender, &a.Age,
		&a.Email, &a.Phone, &a.Street, &a.Barangay, &a.City, &a.Province,
		&a.Program, &a.YearLevel, &a.CurriculumCode, &a.LRN, &a.DateGraduated,
		&a.PreviousSchool, &a.PreviousSchoolAddress, &a.Achievement,
		&a.AdmissionDate, &a.SchoolYear, &a.Period, &a.Status, &a.FamilyMembersRaw,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.FamilyMembers = models.DecodeFamilyMembers(a.FamilyMembersRaw)
	return a, nil
}

// Create inserts a new admission and returns its id
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) (int64, error) {
	sql, args, err := r.sb.Insert("admissions").
		Columns(admissionColumns...).
		Values(admissionValues(admission)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admission SQL")
		return 0, fmt.Errorf("failed to build create admission query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create admission query")
		return 0, fmt.Errorf("error creating admission: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admission by id
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(admissionColumns, "created_at")...)...).
		From("admissions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admission SQL")
		return nil, fmt.Errorf("failed to build get admission query: %w", err)
	}

	admission, err := scanAdmission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmissionNotFound
		}
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error scanning admission row")
		return nil, fmt.Errorf("error getting admission by id: %w", err)
	}

	return admission, nil
}

// List retrieves all admissions, newest first
func (r *AdmissionRepository) List(ctx context.Context) ([]*models.Admission, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(admissionColumns, "created_at")...)...).
		From("admissions").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list admissions SQL")
		return nil, fmt.Errorf("failed to build list admissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admissions query")
		return nil, fmt.Errorf("error querying admissions: %w", err)
	}
	defer rows.Close()

	admissions := []*models.Admission{}
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning admission row during list")
			return nil, fmt.Errorf("error scanning admission row: %w", err)
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating admission rows")
		return nil, fmt.Errorf("error iterating admission rows: %w", err)
	}

	return admissions, nil
}

// Update rewrites an admission's stored fields in place
func (r *AdmissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	values := admissionValues(admission)
	setMap := make(map[string]interface{}, len(admissionColumns))
	for i, col := range admissionColumns {
		setMap[col] = values[i]
	}

	sql, args, err := r.sb.Update("admissions").
		SetMap(setMap).
		Where(squirrel.Eq{"id": admission.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admission SQL")
		return fmt.Errorf("failed to build update admission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", admission.ID).Msg("Error executing update admission query")
		return fmt.Errorf("error updating admission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// UpdateStatus updates only the status field in place
func (r *AdmissionRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	sql, args, err := r.sb.Update("admissions").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admission status SQL")
		return fmt.Errorf("failed to build update admission status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error executing update admission status query")
		return fmt.Errorf("error updating admission status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// Delete removes an admission by id
func (r *AdmissionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("admissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete admission SQL")
		return fmt.Errorf("failed to build delete admission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error executing delete admission query")
		return fmt.Errorf("error deleting admission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// DeleteTx removes an admission within a transaction. Used by the transition
// workflow so the source delete commits or rolls back together with the
// destination insert.
func (r *AdmissionRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	sql, args, err := r.sb.Delete("admissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admission query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting admission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}
