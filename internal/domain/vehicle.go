package domain

import "strings"

// MaxVehicleImages caps the imagesJson gallery.
const MaxVehicleImages = 7

// publicStatuses is the storefront visibility allow-list. The status column
// itself is free text; anything outside this set is dealer-internal.
var publicStatuses = map[string]bool{
	"published": true,
	"available": true,
	"in_stock":  true,
	"instock":   true,
}

// Vehicle is one row of a dealer tab's vehicle section (rows 2..leads offset).
type Vehicle struct {
	VehicleID string   `json:"vehicleId"`
	Title     string   `json:"title"`
	Make      string   `json:"make"`
	Model     string   `json:"model"`
	Year      *int     `json:"year"`
	Price     float64  `json:"price"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
	HeroImage string   `json:"heroImage"`
	HeroVideo string   `json:"heroVideo"`
	Images    []string `json:"images"`
	UpdatedAt string   `json:"updatedAt"`
}

// PubliclyVisible reports whether the storefront may list this vehicle.
func (v *Vehicle) PubliclyVisible() bool {
	return publicStatuses[strings.ToLower(strings.TrimSpace(v.Status))]
}
