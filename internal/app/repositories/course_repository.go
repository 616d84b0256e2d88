package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
)

// Foreign key constraints on courses. A referenced teacher or grade can
// disappear between validation and the write; the rejection carries one
// of these names.
const (
	CourseTeacherConstraint = "courses_teacher_id_fkey"
	CourseGradeConstraint   = "courses_grade_id_fkey"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course owned by course.TenantID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (tenant_id, name, teacher_id, grade_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.TenantID, course.Name, course.TeacherID, course.GradeID).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a course owned by the tenant
func (r *CourseRepository) GetByID(ctx context.Context, tenantID, id int64) (*models.Course, error) {
	query := `
		SELECT id, tenant_id, name, teacher_id, grade_id, created_at, updated_at
		FROM courses
		WHERE id = $1 AND tenant_id = $2
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&course.ID,
		&course.TenantID,
		&course.Name,
		&course.TeacherID,
		&course.GradeID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves all courses owned by the tenant with their teacher and
// grade loaded in a single query.
func (r *CourseRepository) List(ctx context.Context, tenantID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.tenant_id, c.name, c.teacher_id, c.grade_id, c.created_at, c.updated_at,
		       t.id, t.tenant_id, t.name, t.specialization, t.created_at, t.updated_at,
		       g.id, g.tenant_id, g.name, g.created_at, g.updated_at
		FROM courses c
		JOIN teachers t ON t.id = c.teacher_id
		JOIN grades g ON g.id = c.grade_id
		WHERE c.tenant_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var teacher models.Teacher
		var grade models.Grade
		if err := rows.Scan(
			&course.ID, &course.TenantID, &course.Name, &course.TeacherID, &course.GradeID,
			&course.CreatedAt, &course.UpdatedAt,
			&teacher.ID, &teacher.TenantID, &teacher.Name, &teacher.Specialization,
			&teacher.CreatedAt, &teacher.UpdatedAt,
			&grade.ID, &grade.TenantID, &grade.Name, &grade.CreatedAt, &grade.UpdatedAt,
		); err != nil {
			return nil, err
		}
		course.Teacher = &teacher
		course.Grade = &grade
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CountByTenant returns the number of courses owned by the tenant
func (r *CourseRepository) CountByTenant(ctx context.Context, tenantID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Update rewrites a course's attributes within its tenant
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, teacher_id = $2, grade_id = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.TeacherID, course.GradeID, course.ID, course.TenantID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a course owned by the tenant
func (r *CourseRepository) Delete(ctx context.Context, tenantID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM courses WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
