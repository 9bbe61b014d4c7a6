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

// archiveColumns is the full column set of the archived_applications table,
// in insert order (id and created_at excluded).
var archiveColumns = []string{
	"first_name", "middle_name", "last_name", "ext_name",
	"citizenship", "religion", "gender", "age",
	"email", "phone", "street", "barangay", "city", "province",
	"program", "year_level", "curriculum_code", "lrn", "date_graduated",
	"previous_school", "previous_school_address", "achievement",
	"admission_date", "school_year", "period",
	"rejection_date", "rejection_reason", "family_members",
}

// ArchiveRepository handles rejected-application database operations
type ArchiveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewArchiveRepository creates a new ArchiveRepository
func NewArchiveRepository(db *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func archiveValues(a *models.ArchivedApplication) []interface{} {
	return []interface{}{
		a.FirstName, a.MiddleName, a.LastName, a.ExtName,
		a.Citizenship, a.Religion, a.Gender, a.Age,
		a.Email, a.Phone, a.Street, a.Barangay, a.City, a.Province,
		a.Program, a.YearLevel, a.CurriculumCode, a.LRN, a.DateGraduated,
		a.PreviousSchool, a.PreviousSchoolAddress, a.Achievement,
		a.AdmissionDate, a.SchoolYear, a.Period,
		a.RejectionDate, a.RejectionReason, a.FamilyMembersRaw,
	}
}

func scanArchive(row pgx.Row) (*models.ArchivedApplication, error) {
	a := &models.ArchivedApplication{}
	err := row.Scan(
		&a.ID,
		&a.FirstName, &a.MiddleName, &a.LastName, &a.ExtName,
		&a.Citizenship, &a.Religion, &a.Gender, &a.Age,
		&a.Email, &a.Phone, &a.Street, &a.Barangay, &a.City, &a.Province,
		&a.Program, &a.YearLevel, &a.CurriculumCode, &a.LRN, &a.DateGraduated,
		&a.PreviousSchool, &a.PreviousSchoolAddress, &a.Achievement,
		&a.AdmissionDate, &a.SchoolYear, &a.Period,
		&a.RejectionDate, &a.RejectionReason, &a.FamilyMembersRaw,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.FamilyMembers = models.DecodeFamilyMembers(a.FamilyMembersRaw)
	return a, nil
}

// CreateTx inserts an archived application within a transaction and returns
// its id. The archive is append-only; there is no update path.
func (r *ArchiveRepository) CreateTx(ctx context.Context, tx pgx.Tx, archived *models.ArchivedApplication) (int64, error) {
	sql, args, err := r.sb.Insert("archived_applications").
		Columns(archiveColumns...).
		Values(archiveValues(archived)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create archive SQL")
		return 0, fmt.Errorf("failed to build create archive query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create archive query")
		return 0, fmt.Errorf("error creating archived application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an archived application by id
func (r *ArchiveRepository) GetByID(ctx context.Context, id int64) (*models.ArchivedApplication, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(archiveColumns, "created_at")...)...).
		From("archived_applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get archive SQL")
		return nil, fmt.Errorf("failed to build get archive query: %w", err)
	}

	archived, err := scanArchive(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArchiveRecordNotFound
		}
		logger.Error().Err(err).Int64("archiveID", id).Msg("Error scanning archive row")
		return nil, fmt.Errorf("error getting archived application by id: %w", err)
	}

	return archived, nil
}

// List retrieves all archived applications, newest rejection first
func (r *ArchiveRepository) List(ctx context.Context) ([]*models.ArchivedApplication, error) {
	sql, args, err := r.sb.Select(append([]string{"id"}, append(archiveColumns, "created_at")...)...).
		From("archived_applications").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list archive SQL")
		return nil, fmt.Errorf("failed to build list archive query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list archive query")
		return nil, fmt.Errorf("error querying archived applications: %w", err)
	}
	defer rows.Close()

	archived := []*models.ArchivedApplication{}
	for rows.Next() {
		record, err := scanArchive(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning archive row during list")
			return nil, fmt.Errorf("error scanning archive row: %w", err)
		}
		archived = append(archived, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating archive rows")
		return nil, fmt.Errorf("error iterating archive rows: %w", err)
	}

	return archived, nil
}
