package domain

const (
	DealerStatusActive = "active"
	DealerStatusPaused = "paused"
)

// Dealer is one row of the admin tab. Timestamps are kept as the ISO-8601
// strings stored in the sheet. Passcode is the plaintext the admin console
// displays next to the hash; it never leaves the admin surface.
type Dealer struct {
	DealerID     string `json:"dealerId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	PasscodeHash string `json:"-"`
	Passcode     string `json:"-"`
	WhatsApp     string `json:"whatsapp"`
	LogoURL      string `json:"logoUrl"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func (d *Dealer) IsActive() bool {
	return d.Status == "" || d.Status == DealerStatusActive
}
