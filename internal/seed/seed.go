package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/coursehub/backend/internal/app/models"
	appRepos "github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/auth"
)

// CreateDefaultData ensures the super-admin account from configuration
// exists. Registration never produces admin accounts, so this is the
// only way the first administrator comes into being.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.SuperAdminEmail == "" || cfg.Seed.SuperAdminPassword == "" {
		lgr.Warn().Msg("Super-admin seed credentials not configured, skipping seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	hashedPassword, err := auth.HashPassword(cfg.Seed.SuperAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing super-admin password")
		return err
	}

	superAdmin := &appModels.User{
		Email:    cfg.Seed.SuperAdminEmail,
		Password: hashedPassword,
		Role:     appModels.RoleSuperAdmin,
	}

	id, err := userRepo.Create(ctx, superAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", cfg.Seed.SuperAdminEmail).Msg("Super-admin already exists, skipping seed")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating super-admin user")
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", cfg.Seed.SuperAdminEmail).Msg("Super-admin user created")
	return nil
}
