package services

import (
	"context"
	"fmt"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// RecordService routes record lookups across the three stores by status tag.
// The tag is validated against the closed status set and dispatched to a
// fixed repository; it never selects a query target directly.
type RecordService interface {
	GetRecord(ctx context.Context, statusTag string, id int64) (interface{}, error)
}

// recordServiceImpl implements the RecordService interface
type recordServiceImpl struct {
	admissionRepo AdmissionStore
	studentRepo   StudentStore
	archiveRepo   ArchiveStore
}

// NewRecordService creates a new record service instance
func NewRecordService(admissionRepo AdmissionStore, studentRepo StudentStore, archiveRepo ArchiveStore) RecordService {
	return &recordServiceImpl{
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
		archiveRepo:   archiveRepo,
	}
}

// GetRecord retrieves a record by id from the store matching the status tag:
// pending admissions, accepted students, rejected archives.
func (s *recordServiceImpl) GetRecord(ctx context.Context, statusTag string, id int64) (interface{}, error) {
	status, err := models.ParseStatus(statusTag)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid record id", apperrors.ErrValidationFailed)
	}

	switch status {
	case models.StatusPending:
		return s.admissionRepo.GetByID(ctx, id)
	case models.StatusAccepted:
		return s.studentRepo.GetByID(ctx, id)
	default:
		return s.archiveRepo.GetByID(ctx, id)
	}
}
