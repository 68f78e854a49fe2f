package api

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
)

// authenticateRequest validates the Authorization header and returns the user ID.
func (s *Server) authenticateRequest(ctx context.Context, authHeader string) (int64, error) {
	if authHeader == "" {
		return 0, huma.Error401Unauthorized("Missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, huma.Error401Unauthorized("Invalid authorization header format")
	}

	user, err := s.services.Auth.VerifyAccessToken(ctx, parts[1])
	if err != nil {
		return 0, huma.Error401Unauthorized("Invalid or expired token")
	}

	return user.ID, nil
}

// parseDateField parses a "YYYY-MM-DD" request field into a calendar date.
// An empty value yields the zero date, which stores as NULL.
func parseDateField(field, value string) (domain.Date, error) {
	if value == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, domainerrors.Validationf("%s must use the YYYY-MM-DD format", field)
	}
	return d, nil
}

// dateString renders a date for the wire; the zero date becomes "".
func dateString(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a confirmation message for Huma.
type MessageOutput struct {
	Body MessageResponse
}
