package storefront

import "carsalesweblink/internal/domain"

// PublicVehicle is the storefront projection of a vehicle. Dealer-internal
// notes never appear here.
type PublicVehicle struct {
	VehicleID string   `json:"vehicleId"`
	Title     string   `json:"title"`
	Make      string   `json:"make"`
	Model     string   `json:"model"`
	Year      *int     `json:"year"`
	Price     float64  `json:"price"`
	HeroImage string   `json:"heroImage"`
	HeroVideo string   `json:"heroVideo"`
	Images    []string `json:"images"`
}

// PublicDealer is the storefront projection of a dealer.
type PublicDealer struct {
	DealerID string `json:"dealerId"`
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	LogoURL  string `json:"logoUrl"`
}

type LeadRequest struct {
	VehicleID     string `json:"vehicleId"`
	Type          string `json:"type"`
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
}

func publicVehicle(v domain.Vehicle) PublicVehicle {
	return PublicVehicle{
		VehicleID: v.VehicleID,
		Title:     v.Title,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Price:     v.Price,
		HeroImage: v.HeroImage,
		HeroVideo: v.HeroVideo,
		Images:    v.Images,
	}
}
