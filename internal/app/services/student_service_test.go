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

func newStudentFixture() (*StudentService, *fakeStudentStore, *fakeGradeStore) {
	students := newFakeStudentStore()
	grades := newFakeGradeStore()
	return NewStudentService(students, grades), students, grades
}

func validStudentRequest(gradeID int64) dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		StudentCode: "S001",
		Name:        "Ana Smith",
		GradeID:     gradeID,
		BirthDate:   "2010-04-21",
		Gender:      "female",
	}
}

func TestCreateStudentValid(t *testing.T) {
	svc, _, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})

	student, err := svc.CreateStudent(context.Background(), 1, validStudentRequest(grade.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.TenantID)
	assert.Equal(t, models.GenderFemale, student.Gender)
	assert.Equal(t, time.Date(2010, 4, 21, 0, 0, 0, 0, time.UTC), student.BirthDate)
}

func TestCreateStudentReportsAllFailingFields(t *testing.T) {
	svc, _, _ := newStudentFixture()

	_, err := svc.CreateStudent(context.Background(), 1, dto.CreateStudentRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	fields := apperrors.FieldsOf(err)
	assert.Contains(t, fields, "studentCode")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "gradeId")
	assert.Contains(t, fields, "birthDate")
	assert.Contains(t, fields, "gender")
}

func TestCreateStudentCodeTakenAcrossTenants(t *testing.T) {
	svc, students, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})
	// The code is held by another tenant's student; it is still taken
	students.add(&models.Student{TenantID: 2, StudentCode: "S001", Name: "Theirs", GradeID: 9})

	_, err := svc.CreateStudent(context.Background(), 1, validStudentRequest(grade.ID))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "studentCode")
}

func TestCreateStudentForeignGradeRejected(t *testing.T) {
	svc, _, grades := newStudentFixture()
	foreign := grades.add(&models.Grade{TenantID: 2, Name: "Grade 5"})

	_, err := svc.CreateStudent(context.Background(), 1, validStudentRequest(foreign.ID))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "gradeId")
}

func TestCreateStudentBadDateAndGender(t *testing.T) {
	svc, _, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})

	req := validStudentRequest(grade.ID)
	req.BirthDate = "21-04-2010"
	req.Gender = "other"

	_, err := svc.CreateStudent(context.Background(), 1, req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	fields := apperrors.FieldsOf(err)
	assert.Contains(t, fields, "birthDate")
	assert.Contains(t, fields, "gender")
}

func TestCreateStudentUniqueRaceFoldsIntoValidation(t *testing.T) {
	svc, students, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})
	students.createErr = &pgconn.PgError{Code: "23505", ConstraintName: repositories.StudentCodeConstraint}

	_, err := svc.CreateStudent(context.Background(), 1, validStudentRequest(grade.ID))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "studentCode")
}

func TestCreateStudentGradeDeletedDuringWrite(t *testing.T) {
	svc, students, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})
	students.createErr = &pgconn.PgError{Code: "23503", ConstraintName: repositories.StudentGradeConstraint}

	// The grade passed the existence check but was gone by insert time
	_, err := svc.CreateStudent(context.Background(), 1, validStudentRequest(grade.ID))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "gradeId")
}

func TestUpdateStudentKeepingOwnCode(t *testing.T) {
	svc, students, grades := newStudentFixture()
	grade := grades.add(&models.Grade{TenantID: 1, Name: "Grade 5"})
	mine := students.add(&models.Student{
		TenantID: 1, StudentCode: "S001", Name: "Ana Smith",
		GradeID: grade.ID, BirthDate: time.Date(2010, 4, 21, 0, 0, 0, 0, time.UTC),
		Gender: models.GenderFemale,
	})

	// Same code, new name: the row being updated is excluded from the
	// uniqueness check
	updated, err := svc.UpdateStudent(context.Background(), 1, mine.ID, dto.UpdateStudentRequest{
		StudentCode: "S001",
		Name:        "Anna Smith",
		GradeID:     grade.ID,
		BirthDate:   "2010-04-21",
		Gender:      "female",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna Smith", updated.Name)
}

func TestUpdateStudentCrossTenantLooksMissing(t *testing.T) {
	svc, students, _ := newStudentFixture()
	other := students.add(&models.Student{TenantID: 2, StudentCode: "S900", Name: "Theirs", GradeID: 4})

	_, err := svc.UpdateStudent(context.Background(), 1, other.ID, dto.UpdateStudentRequest{
		StudentCode: "S900",
		Name:        "Hijacked",
		GradeID:     4,
		BirthDate:   "2010-04-21",
		Gender:      "male",
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteStudentCrossTenantLooksMissing(t *testing.T) {
	svc, students, _ := newStudentFixture()
	other := students.add(&models.Student{TenantID: 2, StudentCode: "S900", Name: "Theirs", GradeID: 4})

	err := svc.DeleteStudent(context.Background(), 1, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
