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

// Foreign key constraints on enrollments.
const (
	EnrollmentStudentConstraint = "enrollments_student_id_fkey"
	EnrollmentCourseConstraint  = "enrollments_course_id_fkey"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a new enrollment owned by enrollment.TenantID
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (tenant_id, student_id, course_id, enrollment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.TenantID, enrollment.StudentID, enrollment.CourseID,
		enrollment.EnrollmentDate).
		Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an enrollment owned by the tenant
func (r *EnrollmentRepository) GetByID(ctx context.Context, tenantID, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, tenant_id, student_id, course_id, enrollment_date, created_at, updated_at
		FROM enrollments
		WHERE id = $1 AND tenant_id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&enrollment.ID,
		&enrollment.TenantID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// List retrieves all enrollments owned by the tenant with student and
// course loaded, newest first.
func (r *EnrollmentRepository) List(ctx context.Context, tenantID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, tenantID, 0)
}

// ListRecent retrieves the most recently created enrollments with student
// and course loaded, newest first.
func (r *EnrollmentRepository) ListRecent(ctx context.Context, tenantID int64, limit int) ([]*models.Enrollment, error) {
	return r.list(ctx, tenantID, limit)
}

func (r *EnrollmentRepository) list(ctx context.Context, tenantID int64, limit int) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.tenant_id, e.student_id, e.course_id, e.enrollment_date, e.created_at, e.updated_at,
		       s.id, s.tenant_id, s.student_code, s.name, s.grade_id, s.birth_date, s.gender, s.created_at, s.updated_at,
		       c.id, c.tenant_id, c.name, c.teacher_id, c.grade_id, c.created_at, c.updated_at
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE e.tenant_id = $1
		ORDER BY e.created_at DESC, e.id DESC
	`

	args := []interface{}{tenantID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var student models.Student
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID, &enrollment.TenantID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrollmentDate, &enrollment.CreatedAt, &enrollment.UpdatedAt,
			&student.ID, &student.TenantID, &student.StudentCode, &student.Name,
			&student.GradeID, &student.BirthDate, &student.Gender,
			&student.CreatedAt, &student.UpdatedAt,
			&course.ID, &course.TenantID, &course.Name, &course.TeacherID, &course.GradeID,
			&course.CreatedAt, &course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		enrollment.Student = &student
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// CountByTenant returns the number of enrollments owned by the tenant
func (r *EnrollmentRepository) CountByTenant(ctx context.Context, tenantID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// Update rewrites an enrollment's attributes within its tenant
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET student_id = $1, course_id = $2, enrollment_date = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate,
		enrollment.ID, enrollment.TenantID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes an enrollment owned by the tenant
func (r *EnrollmentRepository) Delete(ctx context.Context, tenantID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM enrollments WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
