// Package service implements the business rules of the board and
// time-tracking API on top of the store interface.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/neocare/neocare-server/internal/auth"
	"github.com/neocare/neocare-server/internal/domain"
	domainerrors "github.com/neocare/neocare-server/internal/errors"
	"github.com/neocare/neocare-server/internal/store"
	"github.com/neocare/neocare-server/internal/week"
)

// validate is a shared validator instance for request validation.
var validate = func() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for field names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove any options (like omitempty, -)
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})
	return v
}()

// formatValidationError converts validator errors to user-friendly domain errors.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// Return first validation error as a domain error
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				return domainerrors.Validationf("%s is required", field)
			case "email":
				return domainerrors.Validationf("%s must be a valid email address", field)
			case "min":
				return domainerrors.Validationf("%s must be at least %s characters", field, e.Param())
			case "max":
				return domainerrors.Validationf("%s exceeds maximum length of %s characters", field, e.Param())
			case "gt":
				return domainerrors.Validationf("%s must be greater than %s", field, e.Param())
			default:
				return domainerrors.Validationf("%s is invalid", field)
			}
		}
	}
	return err
}

// Services bundles all application services for injection into the API layer.
type Services struct {
	Auth     *AuthService
	Boards   *BoardService
	Lists    *ListService
	Cards    *CardService
	Labels   *LabelService
	Subtasks *SubtaskService
	WorkLogs *WorkLogService
	Reports  *ReportService
}

// NewServices wires every service against the same store.
func NewServices(st store.Store, tokens *auth.TokenService, logger *slog.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(st, tokens, logger),
		Boards:   NewBoardService(st, logger),
		Lists:    NewListService(st, logger),
		Cards:    NewCardService(st, logger),
		Labels:   NewLabelService(st, logger),
		Subtasks: NewSubtaskService(st, logger),
		WorkLogs: NewWorkLogService(st, logger),
		Reports:  NewReportService(st, logger),
	}
}

// ownedBoard loads a board and checks that userID owns it.
// Missing board wins over foreign board: callers get 404 before 403.
func ownedBoard(ctx context.Context, st store.Store, boardID, userID int64) (*domain.Board, error) {
	board, err := st.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("board not found")
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	if board.UserID != userID {
		return nil, domainerrors.Forbidden("board belongs to another user")
	}
	return board, nil
}

// ownedCard loads a card and checks that userID owns its board.
func ownedCard(ctx context.Context, st store.Store, cardID, userID int64) (*domain.Card, error) {
	card, err := st.GetCard(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("card not found")
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	if _, err := ownedBoard(ctx, st, card.BoardID, userID); err != nil {
		return nil, err
	}
	return card, nil
}

// parseWeek maps week parsing failures onto validation errors.
func parseWeek(s string) (week.Week, error) {
	w, err := week.Parse(s)
	if err != nil {
		if errors.Is(err, week.ErrFormat) {
			return week.Week{}, domainerrors.Validation("week must use the YYYY-WW format")
		}
		return week.Week{}, domainerrors.Validation("week number out of range for year")
	}
	return w, nil
}
