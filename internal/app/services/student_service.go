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

// StudentService handles student use-case operations
type StudentService struct {
	studentStore StudentStore
	gradeStore   GradeStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, gradeStore GradeStore) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		gradeStore:   gradeStore,
	}
}

// studentInput is the shared shape of create and update payloads
type studentInput struct {
	StudentCode string
	Name        string
	GradeID     int64
	BirthDate   string
	Gender      string
}

// validateStudentInput checks the student rule set. The student code must
// be unique across all tenants, not just the caller's; excludeID skips
// the row being updated. The grade reference is resolved within the
// caller's tenant so a foreign grade id fails like a missing one.
func (s *StudentService) validateStudentInput(ctx context.Context, tenantID int64, in studentInput, excludeID int64) (time.Time, error) {
	ve := apperrors.NewValidationError()

	if !validation.RequiredString(in.StudentCode) {
		ve.Add("studentCode", "studentCode is required")
	} else if !validation.MaxLength(in.StudentCode, validation.StudentCodeMaxLength) {
		ve.Add("studentCode", fmt.Sprintf("studentCode must be at most %d characters", validation.StudentCodeMaxLength))
	} else {
		taken, err := s.studentStore.CodeExists(ctx, in.StudentCode, excludeID)
		if err != nil {
			return time.Time{}, fmt.Errorf("error checking student code: %w", err)
		}
		if taken {
			ve.Add("studentCode", "studentCode is already taken")
		}
	}

	if !validation.RequiredString(in.Name) {
		ve.Add("name", "name is required")
	} else if !validation.MaxLength(in.Name, validation.StudentNameMaxLength) {
		ve.Add("name", fmt.Sprintf("name must be at most %d characters", validation.StudentNameMaxLength))
	}

	if in.GradeID <= 0 {
		ve.Add("gradeId", "gradeId is required")
	} else if _, err := s.gradeStore.GetByID(ctx, tenantID, in.GradeID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			ve.Add("gradeId", "gradeId must reference an existing grade")
		} else {
			return time.Time{}, fmt.Errorf("error checking grade: %w", err)
		}
	}

	var birthDate time.Time
	if !validation.RequiredString(in.BirthDate) {
		ve.Add("birthDate", "birthDate is required")
	} else {
		parsed, ok := validation.ParseDate(in.BirthDate)
		if !ok {
			ve.Add("birthDate", "birthDate must be a valid date in YYYY-MM-DD format")
		}
		birthDate = parsed
	}

	if !validation.RequiredString(in.Gender) {
		ve.Add("gender", "gender is required")
	} else if !models.Gender(in.Gender).IsValid() {
		ve.Add("gender", "gender must be male or female")
	}

	if err := ve.ErrOrNil(); err != nil {
		return time.Time{}, err
	}
	return birthDate, nil
}

// ListStudents retrieves all students owned by the tenant
func (s *StudentService) ListStudents(ctx context.Context, tenantID int64) ([]*models.Student, error) {
	students, err := s.studentStore.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// CreateStudent validates the input and creates a student owned by the
// caller's tenant
func (s *StudentService) CreateStudent(ctx context.Context, tenantID int64, req dto.CreateStudentRequest) (*models.Student, error) {
	birthDate, err := s.validateStudentInput(ctx, tenantID, studentInput(req), 0)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		TenantID:    tenantID,
		StudentCode: req.StudentCode,
		Name:        req.Name,
		GradeID:     req.GradeID,
		BirthDate:   birthDate,
		Gender:      models.Gender(req.Gender),
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		// A concurrent create can win the student code between the
		// uniqueness check and the insert; surface it like any other
		// validation failure rather than a server fault.
		if dberrors.IsUniqueViolation(err, repositories.StudentCodeConstraint) {
			return nil, apperrors.NewValidationError().Add("studentCode", "studentCode is already taken")
		}
		if dberrors.IsForeignKeyViolation(err, repositories.StudentGradeConstraint) {
			return nil, apperrors.NewValidationError().Add("gradeId", "gradeId must reference an existing grade")
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// UpdateStudent validates the input and updates a student owned by the
// caller's tenant. The current row is excluded from the code uniqueness
// check.
func (s *StudentService) UpdateStudent(ctx context.Context, tenantID, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	birthDate, err := s.validateStudentInput(ctx, tenantID, studentInput(req), id)
	if err != nil {
		return nil, err
	}

	student.StudentCode = req.StudentCode
	student.Name = req.Name
	student.GradeID = req.GradeID
	student.BirthDate = birthDate
	student.Gender = models.Gender(req.Gender)

	if err := s.studentStore.Update(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err, repositories.StudentCodeConstraint) {
			return nil, apperrors.NewValidationError().Add("studentCode", "studentCode is already taken")
		}
		if dberrors.IsForeignKeyViolation(err, repositories.StudentGradeConstraint) {
			return nil, apperrors.NewValidationError().Add("gradeId", "gradeId must reference an existing grade")
		}
		return nil, err
	}

	return student, nil
}

// DeleteStudent deletes a student owned by the caller's tenant
func (s *StudentService) DeleteStudent(ctx context.Context, tenantID, id int64) error {
	return s.studentStore.Delete(ctx, tenantID, id)
}
