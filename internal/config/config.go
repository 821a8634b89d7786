package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingSpreadsheetID is fatal: without the backing spreadsheet no
// repository can operate.
var ErrMissingSpreadsheetID = errors.New("SPREADSHEET_ID is empty")

// Config carries every external identifier and layout constant the
// repositories need. It is built once in main and passed down explicitly so
// tests can run several independent configurations side by side.
type Config struct {
	Port string

	SpreadsheetID         string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string

	AdminTab    string
	SettingsTab string

	// Row layout of a dealer tab: vehicles occupy rows 2..LeadsStartRow-1,
	// leads start one row below the lead header at LeadsStartRow.
	LeadsStartRow    int
	LeadsRowBuffer   int
	MinDealerTabRows int
	MinAdminTabRows  int

	AdminToken string
	JWTSecret  string
	TokenTTL   time.Duration

	AllowedOrigins []string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                  envOr("PORT", "8080"),
		SpreadsheetID:         os.Getenv("SPREADSHEET_ID"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		AdminTab:              envOr("ADMIN_TAB", "Dealers"),
		SettingsTab:           envOr("SETTINGS_TAB", "Settings"),
		LeadsStartRow:         envIntOr("LEADS_START_ROW", 2000),
		LeadsRowBuffer:        envIntOr("LEADS_ROW_BUFFER", 300),
		MinDealerTabRows:      envIntOr("MIN_DEALER_TAB_ROWS", 1200),
		MinAdminTabRows:       envIntOr("MIN_ADMIN_TAB_ROWS", 200),
		AdminToken:            os.Getenv("ADMIN_TOKEN"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		TokenTTL:              envDurationOr("TOKEN_TTL", 24*time.Hour),
		CloudinaryCloudName:   os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:      os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:   os.Getenv("CLOUDINARY_API_SECRET"),
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}
	return cfg, nil
}

// DealerTabMinRows is the grid size a dealer tab must be grown to before the
// lead section at LeadsStartRow is addressable.
func (c *Config) DealerTabMinRows() int {
	if n := c.LeadsStartRow + c.LeadsRowBuffer; n > c.MinDealerTabRows {
		return n
	}
	return c.MinDealerTabRows
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
