package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/db"
)

// Services defined in this package:
// - AuthService: admin login
// - AdmissionService: admission CRUD and the status transition workflow
// - StudentService: student roster operations and name search
// - RecordService: status-routed record lookup across the three stores
// - SectionService: section upserts, roster assignment and succession metadata
//
// Services consume the narrow store interfaces below rather than concrete
// repositories so the workflow logic is testable against fakes.

// TxRunner executes a function within a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// AdmissionStore is the admission persistence surface the services need.
type AdmissionStore interface {
	Create(ctx context.Context, admission *models.Admission) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admission, error)
	List(ctx context.Context) ([]*models.Admission, error)
	Update(ctx context.Context, admission *models.Admission) error
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
	Delete(ctx context.Context, id int64) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error
}

// StudentStore is the student persistence surface the services need.
type StudentStore interface {
	NextSequenceTx(ctx context.Context, tx pgx.Tx, year int) (int64, error)
	CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	SearchByName(ctx context.Context, query string) ([]*models.Student, error)
	ClearSectionTx(ctx context.Context, tx pgx.Tx, sectionName string) error
	AssignSectionTx(ctx context.Context, tx pgx.Tx, studentIDs []int64, sectionName, subjectsRaw string) error
}

// ArchiveStore is the archive persistence surface the services need.
type ArchiveStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, archived *models.ArchivedApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ArchivedApplication, error)
	List(ctx context.Context) ([]*models.ArchivedApplication, error)
}

// SectionStore is the section persistence surface the services need.
type SectionStore interface {
	Create(ctx context.Context, section *models.Section) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetByGradeAndName(ctx context.Context, gradeLevel int, name string) (*models.Section, error)
	List(ctx context.Context) ([]*models.Section, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, section *models.Section) error
	SetSuccession(ctx context.Context, gradeLevel int, name string, succession *models.Succession) error
	ClearSuccession(ctx context.Context, gradeLevel int, name string) error
}

// UserStore is the account persistence surface the services need.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
