package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register",
		Description:   "Creates an account and seeds its default board",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, s.handleRegister)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Exchanges form credentials for a bearer access token",
		Tags:        []string{"Auth"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/auth/me",
		Summary:     "Current user",
		Description: "Returns the authenticated user",
		Tags:        []string{"Auth"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)
}

// === DTOs ===

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" doc:"Account email"`
	Password string `json:"password" doc:"Password (8 characters minimum)"`
}

// RegisterInput wraps the register request for Huma.
type RegisterInput struct {
	Body RegisterRequest
}

// UserResponse contains user data in API responses.
type UserResponse struct {
	ID        int64     `json:"id" doc:"User ID"`
	Email     string    `json:"email" doc:"Account email"`
	CreatedAt time.Time `json:"created_at" doc:"Registration time"`
}

// UserOutput wraps the user response for Huma.
type UserOutput struct {
	Body UserResponse
}

// LoginInput carries the raw form body of a login request.
// The original web client submits application/x-www-form-urlencoded
// credentials with the email in the "username" field.
type LoginInput struct {
	RawBody []byte `doc:"Form-encoded username and password"`
}

// TokenResponse contains an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token" doc:"PASETO v4.local access token"`
	TokenType   string `json:"token_type" doc:"Always \"bearer\""`
}

// TokenOutput wraps the token response for Huma.
type TokenOutput struct {
	Body TokenResponse
}

// GetCurrentUserInput contains parameters for reading the current user.
type GetCurrentUserInput struct {
	Authorization string `header:"Authorization"`
}

// === Handlers ===

func (s *Server) handleRegister(ctx context.Context, input *RegisterInput) (*UserOutput, error) {
	user, err := s.services.Auth.Register(ctx, service.RegisterRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, err
	}

	return &UserOutput{
		Body: UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*TokenOutput, error) {
	form, err := url.ParseQuery(string(input.RawBody))
	if err != nil {
		return nil, domainerrors.Validation("malformed form body")
	}

	username := form.Get("username")
	password := form.Get("password")
	if username == "" || password == "" {
		return nil, domainerrors.Validation("username and password are required")
	}

	token, err := s.services.Auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return &TokenOutput{
		Body: TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		},
	}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, input *GetCurrentUserInput) (*UserOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, huma.Error401Unauthorized("User not found")
	}

	return &UserOutput{
		Body: UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
