package cli

import (
	"context"
	"fmt"
	"log"
)

// List fetches the whole services collection and prints it. On a remote
// failure it logs the cause and shows an empty list; a broken connection
// never takes the app down.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	items, err := a.catalog.List(ctx)
	if err != nil {
		log.Printf("error fetching services: %v", err)
		items = nil
	}

	if len(items) == 0 {
		printlnFn("No services.")
		return nil
	}

	for i, svc := range items {
		printlnFn(fmt.Sprintf("%3d. %-30s %12s  (by %s)", i+1, svc.Name, FormatPrice(svc.Price), svc.Creator))
	}
	return nil
}
