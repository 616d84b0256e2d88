package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
	"github.com/mert/schoolhub/internal/pkg/auth"
	"github.com/mert/schoolhub/internal/pkg/dberrors"
	"github.com/mert/schoolhub/internal/pkg/validation"
)

// AuthService registers tenants with their first user account and signs
// users in. Its only product is the token that carries the tenant id
// every scoped operation trusts.
type AuthService struct {
	registrationStore RegistrationStore
	userStore         UserStore
	jwtService        *auth.JWTService
	logger            zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(registrationStore RegistrationStore, userStore UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		registrationStore: registrationStore,
		userStore:         userStore,
		jwtService:        jwtService,
		logger:            logger,
	}
}

const passwordMinLength = 8

func validateRegisterInput(req dto.RegisterRequest) error {
	ve := apperrors.NewValidationError()

	if !validation.RequiredString(req.SchoolName) {
		ve.Add("schoolName", "schoolName is required")
	}
	if !validation.RequiredString(req.Email) {
		ve.Add("email", "email is required")
	} else if !strings.Contains(req.Email, "@") {
		ve.Add("email", "email must be a valid email address")
	}
	if len(req.Password) < passwordMinLength {
		ve.Add("password", fmt.Sprintf("password must be at least %d characters", passwordMinLength))
	}
	if !validation.RequiredString(req.FullName) {
		ve.Add("fullName", "fullName is required")
	}

	return ve.ErrOrNil()
}

// Register creates a tenant and its first user, then issues a token
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := validateRegisterInput(req); err != nil {
		return nil, err
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError().Add("email", "email is already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	tenant := &models.Tenant{
		SchoolName: req.SchoolName,
		Address:    req.Address,
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
	}
	if err := s.registrationStore.CreateTenantWithUser(ctx, tenant, user); err != nil {
		// Lost a race on the email; the transaction rolls the tenant
		// row back with it.
		if dberrors.IsUniqueViolation(err, "") {
			s.logger.Warn().Str("email", req.Email).Msg("Registration lost email race")
			return nil, apperrors.NewValidationError().Add("email", "email is already registered")
		}
		return nil, fmt.Errorf("error registering tenant: %w", err)
	}

	s.logger.Info().Int64("tenantId", tenant.ID).Int64("userId", user.ID).
		Msg("Tenant registered")

	return s.issueToken(user)
}

// Login verifies credentials and issues a token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if !validation.RequiredString(req.Email) || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		// Missing user and wrong password must be indistinguishable
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		TenantID:    user.TenantID,
	}, nil
}
