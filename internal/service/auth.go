package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neocare/neocare-server/internal/auth"
	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
)

// AuthService handles registration, login, and token verification.
type AuthService struct {
	store        store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(st store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        st,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}

// Register creates a new user account and seeds its default workspace:
// one board with the three standard lists.
// The seed inserts run sequentially after the user insert; they are not
// atomic with it.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	board := &domain.Board{Name: domain.DefaultBoardName, UserID: user.ID}
	if err := s.store.CreateBoard(ctx, board); err != nil {
		return nil, fmt.Errorf("seed board: %w", err)
	}
	seedLists := []string{domain.ListNameTodo, domain.ListNameInProgress, domain.ListNameDone}
	for i, name := range seedLists {
		list := &domain.List{BoardID: board.ID, Name: name, Order: i + 1}
		if err := s.store.CreateList(ctx, list); err != nil {
			return nil, fmt.Errorf("seed list %q: %w", name, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("user registered",
			"user_id", user.ID,
			"email", user.Email,
		)
	}

	return user, nil
}

// Login verifies credentials and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domainerrors.InvalidCredentials("invalid email or password")
	}

	user, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domainerrors.InvalidCredentials("invalid email or password")
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return "", domainerrors.InvalidCredentials("invalid email or password")
	}

	token, err := s.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user logged in", "user_id", user.ID)
	}

	return token, nil
}

// VerifyAccessToken validates a token and returns the associated user.
// Used by the authentication middleware. Every failure mode collapses to
// the same unauthorized error.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokenService.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithCause(err)
	}

	user, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.Unauthorized("unknown user")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
