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

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher owned by teacher.TenantID
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (tenant_id, name, specialization)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.TenantID, teacher.Name, teacher.Specialization).
		Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher owned by the tenant
func (r *TeacherRepository) GetByID(ctx context.Context, tenantID, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, tenant_id, name, specialization, created_at, updated_at
		FROM teachers
		WHERE id = $1 AND tenant_id = $2
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&teacher.ID,
		&teacher.TenantID,
		&teacher.Name,
		&teacher.Specialization,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// List retrieves all teachers owned by the tenant
func (r *TeacherRepository) List(ctx context.Context, tenantID int64) ([]*models.Teacher, error) {
	query := `
		SELECT id, tenant_id, name, specialization, created_at, updated_at
		FROM teachers
		WHERE tenant_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.TenantID,
			&teacher.Name,
			&teacher.Specialization,
			&teacher.CreatedAt,
			&teacher.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update rewrites a teacher's attributes within its tenant
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, specialization = $2, updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		teacher.Name, teacher.Specialization, teacher.ID, teacher.TenantID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a teacher owned by the tenant
func (r *TeacherRepository) Delete(ctx context.Context, tenantID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM teachers WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
