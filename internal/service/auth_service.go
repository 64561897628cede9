package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/authz"
	"bookly-be/internal/jwt"
	"bookly-be/internal/models"
	"bookly-be/internal/repository"
	"bookly-be/internal/tokenstore"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(actor *authz.Actor) error
	ListUsers(actor *authz.Actor, page, pageSize int) (*models.UserListResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	tokens     tokenstore.Store
	ctx        context.Context
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, tokens tokenstore.Store) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokens:     tokens,
		ctx:        context.Background(),
	}
}

// Register creates a new user account
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, apperrors.ErrEmailTaken
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "Successfully registered",
		User: models.AuthResponse{
			User:      models.NewUserResponse(user),
			Token:     token,
			TokenType: "Bearer",
		},
	}, nil
}

// Login authenticates a user and returns user info with JWT token.
// Unknown email and wrong password produce the same error so a caller
// cannot tell which field was wrong.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthenticated)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthenticated)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		User:      models.NewUserResponse(user),
		Token:     token,
		TokenType: "Bearer",
	}, nil
}

// Logout revokes every outstanding token for the actor
func (s *authService) Logout(actor *authz.Actor) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if err := s.tokens.RevokeAll(s.ctx, actor.UserID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// ListUsers returns one page of users, newest first (admin only)
func (s *authService) ListUsers(actor *authz.Actor, page, pageSize int) (*models.UserListResponse, error) {
	if !authz.CanPerform(actor, authz.ActionListUsers) {
		return nil, apperrors.ErrForbidden
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	users, err := s.userRepo.ListPaged(page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := &models.UserListResponse{
		Users:    make([]models.UserResponse, 0, len(users)),
		Page:     page,
		PageSize: pageSize,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, models.NewUserResponse(u))
	}
	return resp, nil
}
