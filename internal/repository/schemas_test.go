package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carsalesweblink/internal/sheets"
)

func TestVehicleSchema_RoundTrip(t *testing.T) {
	year := 2021
	rec := sheets.Record{
		"vehicleId":  "VEH-ABCDEF",
		"title":      "Clean ride",
		"make":       "Toyota",
		"model":      "Hilux",
		"year":       &year,
		"price":      15500.0,
		"status":     "published",
		"notes":      "trade-in",
		"heroImage":  "https://cdn.example/hero.jpg",
		"heroVideo":  "",
		"imagesJson": []string{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"},
		"updatedAt":  "2024-05-01T12:00:00Z",
	}

	assert.Equal(t, rec, vehicleSchema.DecodeRow(vehicleSchema.EncodeRow(rec)))
}

func TestVehicleSchema_RoundTrip_EmptyImages(t *testing.T) {
	rec := sheets.Record{
		"vehicleId":  "VEH-000001",
		"title":      "",
		"make":       "",
		"model":      "",
		"year":       (*int)(nil),
		"price":      float64(0),
		"status":     "",
		"notes":      "",
		"heroImage":  "",
		"heroVideo":  "",
		"imagesJson": []string{},
		"updatedAt":  "",
	}

	assert.Equal(t, rec, vehicleSchema.DecodeRow(vehicleSchema.EncodeRow(rec)))
}

func TestVehicleSchema_LegacyRowWithoutHeroVideo(t *testing.T) {
	// Eleven cells: written before the heroVideo column existed.
	row := []string{
		"VEH-ABCDEF", "Old listing", "Nissan", "Navara", "2018", "9500",
		"available", "", "https://cdn.example/old.jpg", `["https://cdn.example/old.jpg"]`,
		"2023-01-01T00:00:00Z",
	}

	rec := vehicleSchema.DecodeRow(row)
	assert.Equal(t, "", rec.Str("heroVideo"))
	assert.Equal(t, []string{"https://cdn.example/old.jpg"}, rec.List("imagesJson"))
	assert.Equal(t, "2023-01-01T00:00:00Z", rec.Str("updatedAt"))
	assert.Equal(t, 9500.0, rec.Float("price"))
}

func TestDealerSchema_RoundTrip(t *testing.T) {
	rec := sheets.Record{
		"dealerId":     "AB123",
		"name":         "AB Motors",
		"status":       "active",
		"passcodeHash": "aa$bb",
		"passcode":     "123456",
		"whatsapp":     "8765551234",
		"logoUrl":      "https://cdn.example/logo.png",
		"createdAt":    "2024-01-01T00:00:00Z",
		"updatedAt":    "2024-02-01T00:00:00Z",
	}

	assert.Equal(t, rec, dealerSchema.DecodeRow(dealerSchema.EncodeRow(rec)))
}

func TestDealerSchema_LegacyRowWithoutPlaintextColumn(t *testing.T) {
	// Eight cells: written before the plaintext passcode column was inserted
	// after the hash. whatsapp must not be misread as the passcode.
	row := []string{
		"AB123", "AB Motors", "active", "aa$bb",
		"8765551234", "https://cdn.example/logo.png",
		"2023-01-01T00:00:00Z", "2023-06-01T00:00:00Z",
	}

	rec := dealerSchema.DecodeRow(row)
	assert.Equal(t, "", rec.Str("passcode"))
	assert.Equal(t, "aa$bb", rec.Str("passcodeHash"))
	assert.Equal(t, "8765551234", rec.Str("whatsapp"))
	assert.Equal(t, "https://cdn.example/logo.png", rec.Str("logoUrl"))
	assert.Equal(t, "2023-01-01T00:00:00Z", rec.Str("createdAt"))
}

func TestLeadSchema_RoundTrip(t *testing.T) {
	rec := sheets.Record{
		"createdAt":     "2024-03-01T09:00:00Z",
		"leadId":        "lead_9f1c04d2ab56",
		"vehicleId":     "VEH-ABCDEF",
		"type":          "video",
		"name":          "Jane",
		"phone":         "8765551234",
		"email":         "",
		"preferredDate": "2024-03-05",
		"preferredTime": "14:00",
		"notes":         "",
		"source":        "storefront",
		"status":        "new",
	}

	assert.Equal(t, rec, leadSchema.DecodeRow(leadSchema.EncodeRow(rec)))
}
