package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	AdmissionRepository *AdmissionRepository
	StudentRepository   *StudentRepository
	ArchiveRepository   *ArchiveRepository
	SectionRepository   *SectionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		AdmissionRepository: NewAdmissionRepository(db),
		StudentRepository:   NewStudentRepository(db),
		ArchiveRepository:   NewArchiveRepository(db),
		SectionRepository:   NewSectionRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
