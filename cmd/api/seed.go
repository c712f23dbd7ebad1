package main

import (
	"context"

	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
)

// seed fills the in-memory repositories with the demo accounts and
// listings used for local development.
func seed(users user.Repository, store catalog.Store) error {
	ctx := context.Background()
	userService := user.NewService(users)

	john, err := userService.RegisterUser(ctx, "seller_john", "john@example.com", "password123", user.RoleSeller)
	if err != nil {
		return err
	}
	if _, err := userService.RegisterUser(ctx, "buyer_jane", "jane@example.com", "password123", user.RoleBuyer); err != nil {
		return err
	}
	if _, err := userService.RegisterUser(ctx, "seller_mike", "mike@example.com", "password123", user.RoleSeller); err != nil {
		return err
	}
	if _, err := userService.RegisterUser(ctx, "buyer_sara", "sara@example.com", "password123", user.RoleBuyer); err != nil {
		return err
	}

	drafts := []catalog.ListingDraft{
		{
			Name:        "Tesla Model 3",
			Description: "2022 Long Range, excellent condition, low mileage.",
			Price:       45000,
			ImageURL:    "https://images.unsplash.com/photo-1617704541003",
		},
		{
			Name:        "Ford F-150",
			Description: "2020 XLT, powerful V8 engine, perfect for work.",
			Price:       35000,
			ImageURL:    "https://images.unsplash.com/photo-1621996384390",
		},
		{
			Name:        "Toyota Camry",
			Description: "2018 LE, reliable and fuel-efficient, great for daily commute.",
			Price:       18000,
			ImageURL:    "https://images.unsplash.com/photo-1583121274602",
		},
		{
			Name:        "BMW X5",
			Description: "2021 M Sport, luxury SUV with advanced features.",
			Price:       60000,
			ImageURL:    "https://images.unsplash.com/photo-1621996384391",
		},
	}

	created := make([]*catalog.Listing, 0, len(drafts))
	for _, d := range drafts {
		l, err := store.Create(ctx, d, john.ID)
		if err != nil {
			return err
		}
		created = append(created, l)
	}

	// The Camry ships pre-sold so the demo catalog shows every status path.
	patch := catalog.PatchOf(created[2])
	patch.Status = catalog.StatusSold
	if _, err := store.Update(ctx, created[2].ID, patch); err != nil {
		return err
	}

	return nil
}
