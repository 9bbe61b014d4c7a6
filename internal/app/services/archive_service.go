package services

import (
	"context"
	"fmt"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// ArchiveService defines read access to rejected applications. Archive rows
// are written only by the rejection transition; nothing edits or deletes them.
type ArchiveService interface {
	GetArchivedApplication(ctx context.Context, id int64) (*models.ArchivedApplication, error)
	ListArchivedApplications(ctx context.Context) ([]*models.ArchivedApplication, error)
}

// archiveServiceImpl implements the ArchiveService interface
type archiveServiceImpl struct {
	archiveRepo ArchiveStore
}

// NewArchiveService creates a new archive service instance
func NewArchiveService(archiveRepo ArchiveStore) ArchiveService {
	return &archiveServiceImpl{archiveRepo: archiveRepo}
}

// GetArchivedApplication retrieves an archived application by id
func (s *archiveServiceImpl) GetArchivedApplication(ctx context.Context, id int64) (*models.ArchivedApplication, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid archive id", apperrors.ErrValidationFailed)
	}
	return s.archiveRepo.GetByID(ctx, id)
}

// ListArchivedApplications retrieves all archived applications
func (s *archiveServiceImpl) ListArchivedApplications(ctx context.Context) ([]*models.ArchivedApplication, error) {
	return s.archiveRepo.List(ctx)
}
