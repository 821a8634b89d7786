package domain

const (
	LeadStatusNew     = "new"
	LeadTypeVideo     = "video"
	LeadSourceDefault = "storefront"
)

// Lead is one row of a dealer tab's lead section, which starts at a fixed row
// offset below the vehicle section.
type Lead struct {
	CreatedAt     string `json:"createdAt"`
	LeadID        string `json:"leadId"`
	VehicleID     string `json:"vehicleId"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
	Source        string `json:"source"`
	Status        string `json:"status"`
}
