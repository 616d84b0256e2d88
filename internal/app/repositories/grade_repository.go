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

// GradeRepository handles database operations for grade levels
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// Create inserts a new grade owned by grade.TenantID
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (tenant_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, grade.TenantID, grade.Name).
		Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade owned by the tenant. A grade belonging to
// another tenant reads as not found.
func (r *GradeRepository) GetByID(ctx context.Context, tenantID, id int64) (*models.Grade, error) {
	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM grades
		WHERE id = $1 AND tenant_id = $2
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id, tenantID).Scan(
		&grade.ID,
		&grade.TenantID,
		&grade.Name,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// List retrieves all grades owned by the tenant
func (r *GradeRepository) List(ctx context.Context, tenantID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM grades
		WHERE tenant_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.TenantID,
			&grade.Name,
			&grade.CreatedAt,
			&grade.UpdatedAt,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Update rewrites a grade's attributes within its tenant
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade.Name, grade.ID, grade.TenantID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a grade owned by the tenant
func (r *GradeRepository) Delete(ctx context.Context, tenantID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM grades WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
