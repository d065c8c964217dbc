package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"salonbook/internal/common"
)

// Login collects credentials, verifies them against the remote users
// collection and, on success, caches the matched record in the session
// store. The authenticator itself never persists anything.
func (a *App) Login(ctx context.Context) error {
	phone, err := GetSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.auth.Login(ctx, phone, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Please enter both phone and password.")
		case errors.Is(err, common.ErrorInvalidCredentials):
			printlnFn("Invalid phone or password.")
		default:
			printlnFn("An error occurred while logging in:", err)
		}
		return err
	}

	if err := a.session.Save(ctx, user); err != nil {
		// the login itself succeeded, only the cached session is missing
		log.Printf("error saving session: %v", err)
	}

	a.user = user
	log.Printf("Logged in as %s", user.FullName)

	return a.List(ctx)
}
