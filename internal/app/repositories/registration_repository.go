package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/db"
)

// RegistrationRepository creates a tenant together with its first user.
// Both rows commit or neither does, so a lost race on the email cannot
// leave an orphan tenant behind.
type RegistrationRepository struct {
	db *db.PostgresDB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(database *db.PostgresDB) *RegistrationRepository {
	return &RegistrationRepository{db: database}
}

// CreateTenantWithUser inserts the tenant and its first user in one
// transaction. The user's tenant id is set from the freshly created
// tenant row.
func (r *RegistrationRepository) CreateTenantWithUser(ctx context.Context, tenant *models.Tenant, user *models.User) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertTenant(ctx, tx, tenant); err != nil {
			return err
		}
		user.TenantID = tenant.ID
		return insertUser(ctx, tx, user)
	})
}
