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

var sectionColumns = []string{
	"id", "grade_level", "name", "school_year", "adviser",
	"next_grade_level", "next_section_name", "created_at",
}

// SectionRepository handles section database operations
type SectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSection(row pgx.Row) (*models.Section, error) {
	s := &models.Section{}
	err := row.Scan(
		&s.ID, &s.GradeLevel, &s.Name, &s.SchoolYear, &s.Adviser,
		&s.NextGradeLevel, &s.NextSectionName, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new section and returns its id
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) (int64, error) {
	sql, args, err := r.sb.Insert("sections").
		Columns("grade_level", "name", "school_year", "adviser").
		Values(section.GradeLevel, section.Name, section.SchoolYear, section.Adviser).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create section SQL")
		return 0, fmt.Errorf("failed to build create section query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrSectionAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create section query")
		return 0, fmt.Errorf("error creating section: %w", err)
	}

	return id, nil
}

// GetByID retrieves a section by id
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	sql, args, err := r.sb.Select(sectionColumns...).
		From("sections").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get section SQL")
		return nil, fmt.Errorf("failed to build get section query: %w", err)
	}

	section, err := scanSection(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		logger.Error().Err(err).Int64("sectionID", id).Msg("Error scanning section row")
		return nil, fmt.Errorf("error getting section by id: %w", err)
	}

	return section, nil
}

// GetByGradeAndName retrieves a section by its grade level and name
func (r *SectionRepository) GetByGradeAndName(ctx context.Context, gradeLevel int, name string) (*models.Section, error) {
	sql, args, err := r.sb.Select(sectionColumns...).
		From("sections").
		Where(squirrel.Eq{"grade_level": gradeLevel, "name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get section by grade/name SQL")
		return nil, fmt.Errorf("failed to build get section query: %w", err)
	}

	section, err := scanSection(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		logger.Error().Err(err).Int("gradeLevel", gradeLevel).Str("name", name).Msg("Error scanning section row")
		return nil, fmt.Errorf("error getting section by grade and name: %w", err)
	}

	return section, nil
}

// List retrieves all sections ordered by grade level then name
func (r *SectionRepository) List(ctx context.Context) ([]*models.Section, error) {
	sql, args, err := r.sb.Select(sectionColumns...).
		From("sections").
		OrderBy("grade_level ASC", "name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list sections SQL")
		return nil, fmt.Errorf("failed to build list sections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list sections query")
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	sections := []*models.Section{}
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning section row during list")
			return nil, fmt.Errorf("error scanning section row: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating section rows")
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	return sections, nil
}

// UpdateTx rewrites a section's descriptive fields within a transaction.
// Roster reassignment happens in the same unit of work.
func (r *SectionRepository) UpdateTx(ctx context.Context, tx pgx.Tx, section *models.Section) error {
	sql, args, err := r.sb.Update("sections").
		SetMap(map[string]interface{}{
			"grade_level": section.GradeLevel,
			"name":        section.Name,
			"school_year": section.SchoolYear,
			"adviser":     section.Adviser,
		}).
		Where(squirrel.Eq{"id": section.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update section SQL")
		return fmt.Errorf("failed to build update section query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrSectionAlreadyExists
		}
		logger.Error().Err(err).Int64("sectionID", section.ID).Msg("Error executing update section query")
		return fmt.Errorf("error updating section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// SetSuccession records a section's declared successor
func (r *SectionRepository) SetSuccession(ctx context.Context, gradeLevel int, name string, succession *models.Succession) error {
	sql, args, err := r.sb.Update("sections").
		SetMap(map[string]interface{}{
			"next_grade_level":  succession.NextGradeLevel,
			"next_section_name": succession.NextSectionName,
		}).
		Where(squirrel.Eq{"grade_level": gradeLevel, "name": name}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set succession SQL")
		return fmt.Errorf("failed to build set succession query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("gradeLevel", gradeLevel).Str("name", name).Msg("Error executing set succession query")
		return fmt.Errorf("error setting succession: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// ClearSuccession removes a section's declared successor
func (r *SectionRepository) ClearSuccession(ctx context.Context, gradeLevel int, name string) error {
	sql, args, err := r.sb.Update("sections").
		SetMap(map[string]interface{}{
			"next_grade_level":  nil,
			"next_section_name": nil,
		}).
		Where(squirrel.Eq{"grade_level": gradeLevel, "name": name}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building clear succession SQL")
		return fmt.Errorf("failed to build clear succession query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("gradeLevel", gradeLevel).Str("name", name).Msg("Error executing clear succession query")
		return fmt.Errorf("error clearing succession: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}
