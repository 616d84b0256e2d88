package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/app/repositories"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
	"github.com/mert/schoolhub/internal/pkg/dberrors"
	"github.com/mert/schoolhub/internal/pkg/validation"
)

// CourseService handles course use-case operations
type CourseService struct {
	courseStore  CourseStore
	teacherStore TeacherStore
	gradeStore   GradeStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, teacherStore TeacherStore, gradeStore GradeStore) *CourseService {
	return &CourseService{
		courseStore:  courseStore,
		teacherStore: teacherStore,
		gradeStore:   gradeStore,
	}
}

// validateCourseInput checks the course rule set. Teacher and grade
// references are resolved within the caller's tenant, so an id owned by
// another tenant fails the same way a missing one does.
func (s *CourseService) validateCourseInput(ctx context.Context, tenantID int64, name string, teacherID, gradeID int64) error {
	ve := apperrors.NewValidationError()

	if !validation.RequiredString(name) {
		ve.Add("name", "name is required")
	} else if !validation.MaxLength(name, validation.CourseNameMaxLength) {
		ve.Add("name", fmt.Sprintf("name must be at most %d characters", validation.CourseNameMaxLength))
	}

	if teacherID <= 0 {
		ve.Add("teacherId", "teacherId is required")
	} else if _, err := s.teacherStore.GetByID(ctx, tenantID, teacherID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			ve.Add("teacherId", "teacherId must reference an existing teacher")
		} else {
			return fmt.Errorf("error checking teacher: %w", err)
		}
	}

	if gradeID <= 0 {
		ve.Add("gradeId", "gradeId is required")
	} else if _, err := s.gradeStore.GetByID(ctx, tenantID, gradeID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			ve.Add("gradeId", "gradeId must reference an existing grade")
		} else {
			return fmt.Errorf("error checking grade: %w", err)
		}
	}

	return ve.ErrOrNil()
}

// courseReferenceGone maps a constraint rejection onto the offending
// field. The referenced teacher or grade can be deleted between the
// existence check and the write; that race reads like a failed reference
// check, not a server fault.
func courseReferenceGone(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, repositories.CourseTeacherConstraint):
		return apperrors.NewValidationError().Add("teacherId", "teacherId must reference an existing teacher")
	case dberrors.IsForeignKeyViolation(err, repositories.CourseGradeConstraint):
		return apperrors.NewValidationError().Add("gradeId", "gradeId must reference an existing grade")
	}
	return nil
}

// ListCourses retrieves all courses owned by the tenant with teacher and
// grade associations loaded
func (s *CourseService) ListCourses(ctx context.Context, tenantID int64) ([]*models.Course, error) {
	courses, err := s.courseStore.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// CreateCourse validates the input and creates a course owned by the
// caller's tenant
func (s *CourseService) CreateCourse(ctx context.Context, tenantID int64, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validateCourseInput(ctx, tenantID, req.Name, req.TeacherID, req.GradeID); err != nil {
		return nil, err
	}

	course := &models.Course{
		TenantID:  tenantID,
		Name:      req.Name,
		TeacherID: req.TeacherID,
		GradeID:   req.GradeID,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		if ve := courseReferenceGone(err); ve != nil {
			return nil, ve
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// UpdateCourse validates the input and updates a course owned by the
// caller's tenant
func (s *CourseService) UpdateCourse(ctx context.Context, tenantID, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseStore.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateCourseInput(ctx, tenantID, req.Name, req.TeacherID, req.GradeID); err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.TeacherID = req.TeacherID
	course.GradeID = req.GradeID

	if err := s.courseStore.Update(ctx, course); err != nil {
		if ve := courseReferenceGone(err); ve != nil {
			return nil, ve
		}
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course owned by the caller's tenant
func (s *CourseService) DeleteCourse(ctx context.Context, tenantID, id int64) error {
	return s.courseStore.Delete(ctx, tenantID, id)
}
