package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/app/repositories"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
)

func newEnrollmentFixture() (*EnrollmentService, *fakeEnrollmentStore, *fakeStudentStore, *fakeCourseStore) {
	enrollments := newFakeEnrollmentStore()
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	return NewEnrollmentService(enrollments, students, courses), enrollments, students, courses
}

func TestCreateEnrollmentValid(t *testing.T) {
	svc, _, students, courses := newEnrollmentFixture()
	student := students.add(&models.Student{TenantID: 1, StudentCode: "S001", Name: "Ana", GradeID: 1})
	course := courses.add(&models.Course{TenantID: 1, Name: "Algebra I", TeacherID: 1, GradeID: 1})

	enrollment, err := svc.CreateEnrollment(context.Background(), 1, dto.CreateEnrollmentRequest{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: "2026-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), enrollment.TenantID)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), enrollment.EnrollmentDate)
}

func TestCreateEnrollmentForeignStudentRejected(t *testing.T) {
	svc, _, students, courses := newEnrollmentFixture()
	foreignStudent := students.add(&models.Student{TenantID: 2, StudentCode: "S900", Name: "Theirs", GradeID: 1})
	course := courses.add(&models.Course{TenantID: 1, Name: "Algebra I", TeacherID: 1, GradeID: 1})

	_, err := svc.CreateEnrollment(context.Background(), 1, dto.CreateEnrollmentRequest{
		StudentID:      foreignStudent.ID,
		CourseID:       course.ID,
		EnrollmentDate: "2026-01-15",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	fields := apperrors.FieldsOf(err)
	require.Contains(t, fields, "studentId")
	assert.Equal(t, []string{"studentId must reference one of your students"}, fields["studentId"])
}

func TestCreateEnrollmentForeignCourseRejected(t *testing.T) {
	svc, _, students, courses := newEnrollmentFixture()
	student := students.add(&models.Student{TenantID: 1, StudentCode: "S001", Name: "Ana", GradeID: 1})
	foreignCourse := courses.add(&models.Course{TenantID: 2, Name: "Theirs", TeacherID: 1, GradeID: 1})

	_, err := svc.CreateEnrollment(context.Background(), 1, dto.CreateEnrollmentRequest{
		StudentID:      student.ID,
		CourseID:       foreignCourse.ID,
		EnrollmentDate: "2026-01-15",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "courseId")
}

func TestCreateEnrollmentBadDate(t *testing.T) {
	svc, _, students, courses := newEnrollmentFixture()
	student := students.add(&models.Student{TenantID: 1, StudentCode: "S001", Name: "Ana", GradeID: 1})
	course := courses.add(&models.Course{TenantID: 1, Name: "Algebra I", TeacherID: 1, GradeID: 1})

	_, err := svc.CreateEnrollment(context.Background(), 1, dto.CreateEnrollmentRequest{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: "15/01/2026",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "enrollmentDate")
}

func TestCreateEnrollmentStudentDeletedDuringWrite(t *testing.T) {
	svc, enrollments, students, courses := newEnrollmentFixture()
	student := students.add(&models.Student{TenantID: 1, StudentCode: "S001", Name: "Ana", GradeID: 1})
	course := courses.add(&models.Course{TenantID: 1, Name: "Algebra I", TeacherID: 1, GradeID: 1})
	enrollments.createErr = &pgconn.PgError{Code: "23503", ConstraintName: repositories.EnrollmentStudentConstraint}

	_, err := svc.CreateEnrollment(context.Background(), 1, dto.CreateEnrollmentRequest{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: "2026-01-15",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "studentId")
}

func TestUpdateEnrollmentCrossTenantLooksMissing(t *testing.T) {
	svc, enrollments, _, _ := newEnrollmentFixture()
	other := enrollments.add(&models.Enrollment{TenantID: 2, StudentID: 1, CourseID: 1})

	_, err := svc.UpdateEnrollment(context.Background(), 1, other.ID, dto.UpdateEnrollmentRequest{
		StudentID:      1,
		CourseID:       1,
		EnrollmentDate: "2026-01-15",
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteEnrollmentCrossTenantLooksMissing(t *testing.T) {
	svc, enrollments, _, _ := newEnrollmentFixture()
	other := enrollments.add(&models.Enrollment{TenantID: 2, StudentID: 1, CourseID: 1})

	err := svc.DeleteEnrollment(context.Background(), 1, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListEnrollmentsScopedToTenant(t *testing.T) {
	svc, enrollments, _, _ := newEnrollmentFixture()
	enrollments.add(&models.Enrollment{TenantID: 1, StudentID: 1, CourseID: 1})
	enrollments.add(&models.Enrollment{TenantID: 2, StudentID: 2, CourseID: 2})

	list, err := svc.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].TenantID)
}
