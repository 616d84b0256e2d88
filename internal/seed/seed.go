package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/mert/schoolhub/internal/app/models"
	appRepos "github.com/mert/schoolhub/internal/app/repositories"
	"github.com/mert/schoolhub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

const (
	demoSchoolName = "Demo School"
	demoAdminEmail = "admin@demo.school"
	demoAdminPass  = "Admin123!"
)

// CreateDefaultData creates a demo tenant with an admin account so a
// fresh install can be signed into immediately. Re-runs are no-ops.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	tenantRepo := appRepos.NewTenantRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	exists, err := userRepo.EmailExists(ctx, demoAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if demo admin exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Demo admin already exists, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating demo tenant and admin user...")

	hashedPassword, err := auth.HashPassword(demoAdminPass)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing demo admin password")
		return err
	}

	tenant := &appModels.Tenant{
		SchoolName: demoSchoolName,
		Address:    "1 Demo Street",
	}
	if err := tenantRepo.Create(ctx, tenant); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo tenant")
		return err
	}

	if tenant.ID <= 0 {
		return errors.New("demo tenant created without an id")
	}

	admin := &appModels.User{
		TenantID:     tenant.ID,
		Email:        demoAdminEmail,
		PasswordHash: hashedPassword,
		FullName:     "Demo Administrator",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo admin user")
		return err
	}

	lgr.Info().Int64("tenantId", tenant.ID).Int64("adminId", admin.ID).Msg("Default data created successfully")
	return nil
}
