package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"salonbook/internal/common"
)

// Add prompts for a name and a price and creates the record. The creator
// is the logged-in user's display name, frozen into the record at creation.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Service name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	price, err := GetSimpleText(a.reader, "Service price", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	svc, err := a.catalog.Create(ctx, name, price, a.user.FullName)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Please enter both name and price.")
		case errors.Is(err, common.ErrorBusy):
			printlnFn("Still adding the previous service, try again.")
		default:
			printlnFn("Error adding service:", err)
		}
		return err
	}

	printlnFn("Added", svc.Name, "("+FormatPrice(svc.Price)+")")
	return nil
}
