package dealer

type LoginRequest struct {
	DealerID string `json:"dealerId" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

type VehicleRequest struct {
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
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
