package cli

import (
	"context"
	"log"
)

// Logout clears the session store and drops the in-memory user, returning
// the app to the login gate.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		log.Printf("error logging out: %v", err)
		return err
	}

	a.user = nil
	printlnFn("Logged out.")
	return nil
}
