package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"salonbook/internal/common"
	"salonbook/internal/models"
)

// pickService resolves a list number against the cached list, the same
// client-side copy the list command renders.
func (a *App) pickService(prompt string) (*models.Service, error) {
	items := a.catalog.Cached()
	if len(items) == 0 {
		printlnFn("No services. Run list first.")
		return nil, nil
	}

	text, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(items) {
		printlnFn("No such service:", text)
		return nil, nil
	}
	return &items[n-1], nil
}

// Update overwrites the name and price of a selected record; creator and
// creation time stay as they were.
func (a *App) Update(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	svc, err := a.pickService("Number of the service to update")
	if err != nil || svc == nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "New name ["+svc.Name+"]", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if name == "" {
		name = svc.Name
	}
	price, err := GetSimpleText(a.reader, "New price ["+svc.Price+"]", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if price == "" {
		price = svc.Price
	}

	if err := a.catalog.Update(ctx, svc.ID, name, price); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("The service no longer exists.")
		case errors.Is(err, common.ErrorBusy):
			printlnFn("Another change for this service is still running.")
		default:
			printlnFn("Error updating service:", err)
		}
		return err
	}

	printlnFn("Updated", name)
	return nil
}
