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

// TeacherService handles teacher use-case operations for one tenant at a
// time; the tenant id is supplied per call by the authenticated caller.
type TeacherService struct {
	teacherStore TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherStore TeacherStore) *TeacherService {
	return &TeacherService{teacherStore: teacherStore}
}

// validateTeacherInput checks the teacher rule set, reporting every
// failing field.
func validateTeacherInput(name, specialization string) error {
	ve := apperrors.NewValidationError()

	if !validation.RequiredString(name) {
		ve.Add("name", "name is required")
	} else if !validation.MaxLength(name, validation.TeacherNameMaxLength) {
		ve.Add("name", fmt.Sprintf("name must be at most %d characters", validation.TeacherNameMaxLength))
	}

	if !validation.RequiredString(specialization) {
		ve.Add("specialization", "specialization is required")
	}

	return ve.ErrOrNil()
}

// ListTeachers retrieves all teachers owned by the tenant
func (s *TeacherService) ListTeachers(ctx context.Context, tenantID int64) ([]*models.Teacher, error) {
	teachers, err := s.teacherStore.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// CreateTeacher validates the input and creates a teacher owned by the
// caller's tenant. The tenant id always comes from the session context,
// never from the payload.
func (s *TeacherService) CreateTeacher(ctx context.Context, tenantID int64, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := validateTeacherInput(req.Name, req.Specialization); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		TenantID:       tenantID,
		Name:           req.Name,
		Specialization: req.Specialization,
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}

	return teacher, nil
}

// UpdateTeacher updates a teacher owned by the caller's tenant. The row
// is resolved first so a missing or foreign id reads as not found even
// when the payload is also invalid.
func (s *TeacherService) UpdateTeacher(ctx context.Context, tenantID, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherStore.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := validateTeacherInput(req.Name, req.Specialization); err != nil {
		return nil, err
	}

	teacher.Name = req.Name
	teacher.Specialization = req.Specialization

	if err := s.teacherStore.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// DeleteTeacher deletes a teacher owned by the caller's tenant. A
// teacher still assigned to courses cannot be removed.
func (s *TeacherService) DeleteTeacher(ctx context.Context, tenantID, id int64) error {
	err := s.teacherStore.Delete(ctx, tenantID, id)
	if dberrors.IsForeignKeyViolation(err, "") {
		return fmt.Errorf("teacher is referenced by courses: %w", apperrors.ErrConflict)
	}
	return err
}
