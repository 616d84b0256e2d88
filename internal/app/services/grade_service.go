package services

import (
	"context"
	"fmt"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
	"github.com/mert/schoolhub/internal/pkg/dberrors"
	"github.com/mert/schoolhub/internal/pkg/validation"
)

// GradeService handles grade-level use-case operations
type GradeService struct {
	gradeStore GradeStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeStore GradeStore) *GradeService {
	return &GradeService{gradeStore: gradeStore}
}

func validateGradeInput(name string) error {
	ve := apperrors.NewValidationError()
	if !validation.RequiredString(name) {
		ve.Add("name", "name is required")
	}
	return ve.ErrOrNil()
}

// ListGrades retrieves all grades owned by the tenant
func (s *GradeService) ListGrades(ctx context.Context, tenantID int64) ([]*models.Grade, error) {
	grades, err := s.gradeStore.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// CreateGrade validates the input and creates a grade owned by the
// caller's tenant
func (s *GradeService) CreateGrade(ctx context.Context, tenantID int64, req dto.CreateGradeRequest) (*models.Grade, error) {
	if err := validateGradeInput(req.Name); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		TenantID: tenantID,
		Name:     req.Name,
	}

	if err := s.gradeStore.Create(ctx, grade); err != nil {
		return nil, fmt.Errorf("error creating grade: %w", err)
	}

	return grade, nil
}

// UpdateGrade updates a grade owned by the caller's tenant. The row is
// resolved first so a missing or foreign id reads as not found even when
// the payload is also invalid.
func (s *GradeService) UpdateGrade(ctx context.Context, tenantID, id int64, req dto.UpdateGradeRequest) (*models.Grade, error) {
	grade, err := s.gradeStore.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := validateGradeInput(req.Name); err != nil {
		return nil, err
	}

	grade.Name = req.Name

	if err := s.gradeStore.Update(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// DeleteGrade deletes a grade owned by the caller's tenant. A grade
// still referenced by students or courses cannot be removed.
func (s *GradeService) DeleteGrade(ctx context.Context, tenantID, id int64) error {
	err := s.gradeStore.Delete(ctx, tenantID, id)
	if dberrors.IsForeignKeyViolation(err, "") {
		return fmt.Errorf("grade is referenced by students or courses: %w", apperrors.ErrConflict)
	}
	return err
}
