package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/app/repositories"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
	"github.com/mert/schoolhub/internal/pkg/dberrors"
	"github.com/mert/schoolhub/internal/pkg/validation"
)

// EnrollmentService handles enrollment use-case operations
type EnrollmentService struct {
	enrollmentStore EnrollmentStore
	studentStore    StudentStore
	courseStore     CourseStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentStore EnrollmentStore, studentStore StudentStore, courseStore CourseStore) *EnrollmentService {
	return &EnrollmentService{
		enrollmentStore: enrollmentStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// validateEnrollmentInput checks the enrollment rule set. Both the
// student and the course must resolve within the caller's tenant; a row
// owned by another tenant fails the field exactly like a missing row.
func (s *EnrollmentService) validateEnrollmentInput(ctx context.Context, tenantID int64, studentID, courseID int64, date string) (time.Time, error) {
	ve := apperrors.NewValidationError()

	if studentID <= 0 {
		ve.Add("studentId", "studentId is required")
	} else if _, err := s.studentStore.GetByID(ctx, tenantID, studentID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			ve.Add("studentId", "studentId must reference one of your students")
		} else {
			return time.Time{}, fmt.Errorf("error checking student: %w", err)
		}
	}

	if courseID <= 0 {
		ve.Add("courseId", "courseId is required")
	} else if _, err := s.courseStore.GetByID(ctx, tenantID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			ve.Add("courseId", "courseId must reference one of your courses")
		} else {
			return time.Time{}, fmt.Errorf("error checking course: %w", err)
		}
	}

	var enrollmentDate time.Time
	if !validation.RequiredString(date) {
		ve.Add("enrollmentDate", "enrollmentDate is required")
	} else {
		parsed, ok := validation.ParseDate(date)
		if !ok {
			ve.Add("enrollmentDate", "enrollmentDate must be a valid date in YYYY-MM-DD format")
		}
		enrollmentDate = parsed
	}

	if err := ve.ErrOrNil(); err != nil {
		return time.Time{}, err
	}
	return enrollmentDate, nil
}

// enrollmentReferenceGone maps a constraint rejection onto the offending
// field when the student or course was deleted between the existence
// check and the write.
func enrollmentReferenceGone(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, repositories.EnrollmentStudentConstraint):
		return apperrors.NewValidationError().Add("studentId", "studentId must reference one of your students")
	case dberrors.IsForeignKeyViolation(err, repositories.EnrollmentCourseConstraint):
		return apperrors.NewValidationError().Add("courseId", "courseId must reference one of your courses")
	}
	return nil
}

// ListEnrollments retrieves all enrollments owned by the tenant with
// student and course loaded, newest first
func (s *EnrollmentService) ListEnrollments(ctx context.Context, tenantID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentStore.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// CreateEnrollment validates the input and enrolls a student of the
// caller's tenant in one of its courses
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, tenantID int64, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	enrollmentDate, err := s.validateEnrollmentInput(ctx, tenantID, req.StudentID, req.CourseID, req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		TenantID:       tenantID,
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		EnrollmentDate: enrollmentDate,
	}

	if err := s.enrollmentStore.Create(ctx, enrollment); err != nil {
		if ve := enrollmentReferenceGone(err); ve != nil {
			return nil, ve
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

// UpdateEnrollment validates the input and updates an enrollment owned by
// the caller's tenant
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, tenantID, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentStore.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	enrollmentDate, err := s.validateEnrollmentInput(ctx, tenantID, req.StudentID, req.CourseID, req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	enrollment.StudentID = req.StudentID
	enrollment.CourseID = req.CourseID
	enrollment.EnrollmentDate = enrollmentDate

	if err := s.enrollmentStore.Update(ctx, enrollment); err != nil {
		if ve := enrollmentReferenceGone(err); ve != nil {
			return nil, ve
		}
		return nil, err
	}

	return enrollment, nil
}

// DeleteEnrollment deletes an enrollment owned by the caller's tenant
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, tenantID, id int64) error {
	return s.enrollmentStore.Delete(ctx, tenantID, id)
}
