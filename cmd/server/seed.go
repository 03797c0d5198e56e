package main

import (
	"context"

	"pawtrol/internal/registry"
)

// seedDemoContacts loads owner contacts for the pets the mock ranking
// service hands back, so a development server can run the full scan to
// disclosure to return-to-owner flow without real registry data.
func seedDemoContacts(ctx context.Context, contacts registry.Store) error {
	demo := []*registry.OwnerContact{
		{
			PetID:                "pet-00421",
			OwnerName:            "J. Alvarez",
			Phone:                "555-0142",
			Email:                "jalvarez@example.com",
			HomeAddress:          "12 Oak Lane",
			ApproachInstructions: "Responds to the name Biscuit",
		},
		{
			PetID:          "pet-00155",
			OwnerName:      "M. Okafor",
			Phone:          "555-0187",
			Email:          "mokafor@example.com",
			EmergencyName:  "T. Okafor",
			EmergencyPhone: "555-0188",
			HomeAddress:    "4 Harbor Street",
			MedicalNotes:   "Daily thyroid medication",
		},
	}
	for _, contact := range demo {
		if err := contacts.Upsert(ctx, contact); err != nil {
			return err
		}
	}
	return nil
}
