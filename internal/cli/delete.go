package cli

import (
	"context"
	"errors"

	"salonbook/internal/common"
)

// Delete removes a selected record. Deleting a record someone else already
// removed is treated as done.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	svc, err := a.pickService("Number of the service to delete")
	if err != nil || svc == nil {
		return err
	}

	if err := a.catalog.Delete(ctx, svc.ID); err != nil {
		if errors.Is(err, common.ErrorBusy) {
			printlnFn("Another change for this service is still running.")
		} else {
			printlnFn("Error deleting service:", err)
		}
		return err
	}

	printlnFn("Deleted", svc.Name)
	return nil
}
