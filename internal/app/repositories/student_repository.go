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

// StudentCodeConstraint is the unique constraint backing the global
// student code invariant. Races that slip past validation surface as a
// unique violation on this constraint.
const StudentCodeConstraint = "students_student_code_key"

// StudentGradeConstraint is the foreign key from students to grades.
const StudentGradeConstraint = "students_grade_id_fkey"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student owned by student.TenantID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (tenant_id, student_code, name, grade_id, birth_date, gender)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.TenantID, student.StudentCode, student.Name,
		student.GradeID, student.BirthDate, student.Gender).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student owned by the tenant
func (r *StudentRepository) GetByID(ctx context.Context, tenantID, id int64) (*models.Student, error) {
	query := `
		SELECT id, tenant_id, student_code, name, grade_id, birth_date, gender, created_at, updated_at
		FROM students
		WHERE id = $1 AND tenant_id = $2
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&student.ID,
		&student.TenantID,
		&student.StudentCode,
		&student.Name,
		&student.GradeID,
		&student.BirthDate,
		&student.Gender,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// List retrieves all students owned by the tenant
func (r *StudentRepository) List(ctx context.Context, tenantID int64) ([]*models.Student, error) {
	query := `
		SELECT id, tenant_id, student_code, name, grade_id, birth_date, gender, created_at, updated_at
		FROM students
		WHERE tenant_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.TenantID,
			&student.StudentCode,
			&student.Name,
			&student.GradeID,
			&student.BirthDate,
			&student.Gender,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CodeExists checks if a student code is already taken. The check is
// deliberately global across tenants; excludeID skips the row being
// updated (pass 0 on create).
func (r *StudentRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student code: %w", err)
	}
	return exists, nil
}

// CountByTenant returns the number of students owned by the tenant
func (r *StudentRepository) CountByTenant(ctx context.Context, tenantID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update rewrites a student's attributes within its tenant
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_code = $1, name = $2, grade_id = $3, birth_date = $4, gender = $5, updated_at = NOW()
		WHERE id = $6 AND tenant_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentCode, student.Name, student.GradeID,
		student.BirthDate, student.Gender, student.ID, student.TenantID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a student owned by the tenant
func (r *StudentRepository) Delete(ctx context.Context, tenantID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM students WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
