package services

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/app/repositories"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
)

func TestCreateTeacherUsesCallerTenant(t *testing.T) {
	store := newFakeTeacherStore()
	svc := NewTeacherService(store)

	teacher, err := svc.CreateTeacher(context.Background(), 7, dto.CreateTeacherRequest{
		Name:           "John Doe",
		Specialization: "Mathematics",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), teacher.TenantID)
	assert.NotZero(t, teacher.ID)
}

func TestCreateTeacherReportsAllFailingFields(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore())

	_, err := svc.CreateTeacher(context.Background(), 1, dto.CreateTeacherRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	fields := apperrors.FieldsOf(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "specialization")
}

func TestCreateTeacherNameTooLong(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore())

	_, err := svc.CreateTeacher(context.Background(), 1, dto.CreateTeacherRequest{
		Name:           strings.Repeat("x", 101),
		Specialization: "History",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.FieldsOf(err), "name")
}

func TestListTeachersScopedToTenant(t *testing.T) {
	store := newFakeTeacherStore()
	store.add(&models.Teacher{TenantID: 1, Name: "Mine", Specialization: "Math"})
	store.add(&models.Teacher{TenantID: 2, Name: "Theirs", Specialization: "Art"})
	svc := NewTeacherService(store)

	teachers, err := svc.ListTeachers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Mine", teachers[0].Name)
}

func TestUpdateTeacherCrossTenantLooksMissing(t *testing.T) {
	store := newFakeTeacherStore()
	other := store.add(&models.Teacher{TenantID: 2, Name: "Theirs", Specialization: "Art"})
	svc := NewTeacherService(store)

	_, err := svc.UpdateTeacher(context.Background(), 1, other.ID, dto.UpdateTeacherRequest{
		Name:           "Hijacked",
		Specialization: "Art",
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// The row must be untouched
	kept, err := store.GetByID(context.Background(), 2, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", kept.Name)
}

func TestUpdateTeacherMissingRowWinsOverBadPayload(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore())

	// The row is resolved before the payload is validated
	_, err := svc.UpdateTeacher(context.Background(), 1, 99, dto.UpdateTeacherRequest{})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteTeacherAssignedToCourses(t *testing.T) {
	store := newFakeTeacherStore()
	mine := store.add(&models.Teacher{TenantID: 1, Name: "John Doe", Specialization: "Math"})
	store.deleteErr = &pgconn.PgError{Code: "23503", ConstraintName: repositories.CourseTeacherConstraint}
	svc := NewTeacherService(store)

	err := svc.DeleteTeacher(context.Background(), 1, mine.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteTeacherCrossTenantLooksMissing(t *testing.T) {
	store := newFakeTeacherStore()
	other := store.add(&models.Teacher{TenantID: 2, Name: "Theirs", Specialization: "Art"})
	svc := NewTeacherService(store)

	err := svc.DeleteTeacher(context.Background(), 1, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = store.GetByID(context.Background(), 2, other.ID)
	assert.NoError(t, err)
}

func TestDeleteTeacherMissingRow(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore())

	err := svc.DeleteTeacher(context.Background(), 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
