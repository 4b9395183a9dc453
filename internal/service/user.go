// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bitloft/orgkit/internal/auth"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RelationSyncer mirrors membership changes into the permission system.
// Satisfied by *authz.Service; a nil syncer disables mirroring.
type RelationSyncer interface {
	GrantOrganizationRole(ctx context.Context, orgID, userID string, role model.OrganizationRole) error
	RevokeOrganizationRole(ctx context.Context, orgID, userID string, role model.OrganizationRole) error
}

// UserService handles signup, login, and membership-record updates.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	relations      RelationSyncer
	validate       *validator.Validate
	now            func() time.Time
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	relations RelationSyncer,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		relations:      relations,
		validate:       validator.New(),
		now:            time.Now,
	}
}

type SignupInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers a new user with no organization attached.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashed,
		Role:         model.RoleMember,
		IsFirstLogin: true,
		LastActiveAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and issues a session token.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.UpdateFields(ctx, user.ID, map[string]any{
		"last_active_at": s.now().UTC(),
	}); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// Me returns the current membership record.
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// MarkOrganizationSetupComplete flips the acting user into the
// creator/admin-with-organization state once their chart is durably saved.
// Idempotent: repeated calls land on the same record.
func (s *UserService) MarkOrganizationSetupComplete(ctx context.Context, userID, orgID, orgCode string) error {
	if userID == "" || orgID == "" {
		return fmt.Errorf("%w: user id and organization id are required", domain.ErrInvalidInput)
	}

	now := s.now().UTC()
	err := s.repo.UpdateFields(ctx, userID, map[string]any{
		"organization_id":   orgID,
		"organization_code": orgCode,
		"has_organization":  true,
		"role":              model.RoleAdmin,
		"organization_role": model.OrgRoleCreator,
		"is_creator":        true,
		"is_first_login":    false,
		"last_active_at":    now,
		"updated_at":        now,
	})
	if err != nil {
		return err
	}

	if s.relations != nil {
		if err := s.relations.GrantOrganizationRole(ctx, orgID, userID, model.OrgRoleCreator); err != nil {
			// Relations are rebuilt by the next sync; membership is the
			// source of truth.
			slog.WarnContext(ctx, "failed to sync creator relation", "userID", userID, "organizationID", orgID, "error", err)
		}
	}
	return nil
}

// JoinOrganization attaches a user to an organization through an accepted
// invite. Observers keep the observer role from their chart node; everyone
// else joins as a member.
func (s *UserService) JoinOrganization(ctx context.Context, userID string, invite *model.Invite, asObserver bool) error {
	if userID == "" || invite == nil || invite.OrganizationID == "" {
		return fmt.Errorf("%w: user id and invite are required", domain.ErrInvalidInput)
	}

	current, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	role := model.RoleMember
	if asObserver {
		role = model.RoleObserver
	}

	now := s.now().UTC()
	if err := s.repo.UpdateFields(ctx, userID, map[string]any{
		"organization_id":   invite.OrganizationID,
		"organization_code": invite.OrganizationCode,
		"has_organization":  true,
		"role":              role,
		"organization_role": model.OrgRoleMember,
		"is_creator":        false,
		"is_first_login":    false,
		"last_active_at":    now,
		"updated_at":        now,
	}); err != nil {
		return err
	}

	if s.relations != nil {
		// Switching organizations leaves a stale relation behind unless the
		// old one is revoked first.
		if current.HasOrganization && current.OrganizationID != "" && current.OrganizationID != invite.OrganizationID {
			if err := s.relations.RevokeOrganizationRole(ctx, current.OrganizationID, userID, current.OrganizationRole); err != nil {
				slog.WarnContext(ctx, "failed to revoke stale relation", "userID", userID, "organizationID", current.OrganizationID, "error", err)
			}
		}
		if err := s.relations.GrantOrganizationRole(ctx, invite.OrganizationID, userID, model.OrgRoleMember); err != nil {
			slog.WarnContext(ctx, "failed to sync member relation", "userID", userID, "organizationID", invite.OrganizationID, "error", err)
		}
	}
	return nil
}
