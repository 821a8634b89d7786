package admin

type CreateDealerRequest struct {
	DealerID string `json:"dealerId" binding:"required" validate:"required,dealerid"`
	Name     string `json:"name" binding:"required" validate:"required"`
	Passcode string `json:"passcode"`
	WhatsApp string `json:"whatsapp"`
	LogoURL  string `json:"logoUrl"`
	Status   string `json:"status"`
}

type UpdateDealerRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	WhatsApp *string `json:"whatsapp"`
	LogoURL  *string `json:"logoUrl"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DealerSummary is one row of the admin console's dealer rollup. The
// plaintext passcode is surfaced for operator convenience; this response
// never leaves the admin surface.
type DealerSummary struct {
	DealerID     string `json:"dealerId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Passcode     string `json:"passcode"`
	WhatsApp     string `json:"whatsapp"`
	LogoURL      string `json:"logoUrl"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	VehicleCount int    `json:"vehicleCount"`
	LeadCount    int    `json:"leadCount"`
	NewLeadCount int    `json:"newLeadCount"`
}
