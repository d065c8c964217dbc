// Package services contains the application services of salonbook: the
// authenticator that gates access and the catalog service that mediates
// between the UI and the remote services collection.
package services

import (
	"context"
	"errors"
	"fmt"

	"salonbook/internal/common"
	"salonbook/internal/logging"
	"salonbook/internal/models"
	"salonbook/internal/repositories/users"
)

// AuthService validates credentials against the remote users collection.
//
// Contract:
//   - Login: returns the first matching user record verbatim, or an error.
//     Performs no persistence; the caller owns the session store.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*models.User, error)
}

type authService struct {
	users  users.Repository
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given repository.
func NewAuthService(repo users.Repository, logger logging.Logger) AuthService {
	return &authService{users: repo, logger: logger}
}

// Login checks the credentials for emptiness before any remote call, then
// queries the users collection for an exact match on both fields.
//
// Errors: common.ErrorValidation for empty input, common.ErrorInvalidCredentials
// when nothing matches, common.ErrorRemote (wrapping the cause) when the
// round trip itself fails. Comparison is plain text, exactly as the records
// are stored; see DESIGN.md for the security note.
func (a *authService) Login(ctx context.Context, phone, password string) (*models.User, error) {
	if phone == "" || password == "" {
		return nil, fmt.Errorf("%w: enter both phone and password", common.ErrorValidation)
	}

	user, err := a.users.FindByCredentials(ctx, phone, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		a.logger.Error(ctx, "login query failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorRemote, err)
	}

	return user, nil
}
