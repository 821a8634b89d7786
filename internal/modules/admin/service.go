package admin

import (
	"context"
	"errors"
	"sync"

	"carsalesweblink/internal/domain"
	"carsalesweblink/internal/pkg/passcode"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
)

// rollupWorkers bounds the per-dealer fan-out when counting vehicles and
// leads for the console overview.
const rollupWorkers = 4

// Service contains the admin console's business logic: dealer lifecycle,
// passcode management, global settings and lead triage.
type Service struct {
	dealers  *repository.DealerRepository
	vehicles *repository.VehicleRepository
	leads    *repository.LeadRepository
	settings *repository.SettingsRepository
}

func NewService(
	dealers *repository.DealerRepository,
	vehicles *repository.VehicleRepository,
	leads *repository.LeadRepository,
	settings *repository.SettingsRepository,
) *Service {
	return &Service{
		dealers:  dealers,
		vehicles: vehicles,
		leads:    leads,
		settings: settings,
	}
}

// CreateDealer provisions a dealer row. A missing passcode is generated. The
// call is an upsert: creating an existing dealerId updates that row in place
// and, when no new passcode was supplied, keeps the stored one.
func (s *Service) CreateDealer(ctx context.Context, req CreateDealerRequest) (*domain.Dealer, error) {
	if req.Status != "" && req.Status != domain.DealerStatusActive && req.Status != domain.DealerStatusPaused {
		return nil, ErrValidation
	}

	d := domain.Dealer{
		DealerID: req.DealerID,
		Name:     req.Name,
		Status:   req.Status,
		WhatsApp: digitsOnly(req.WhatsApp),
		LogoURL:  req.LogoURL,
	}

	plain := req.Passcode
	if plain == "" {
		if existing, err := s.dealers.Get(ctx, req.DealerID); err == nil {
			d.Passcode = existing.Passcode
			d.PasscodeHash = existing.PasscodeHash
		} else if !errors.Is(err, sheets.ErrNotFound) {
			return nil, err
		} else {
			plain = passcode.Generate()
		}
	}
	if plain != "" {
		hash, err := passcode.Hash(plain)
		if err != nil {
			return nil, err
		}
		d.Passcode = plain
		d.PasscodeHash = hash
	}

	return s.dealers.Upsert(ctx, d)
}

// ListDealers returns every dealer with vehicle/lead counts, reading each
// dealer's tab in a bounded parallel group.
func (s *Service) ListDealers(ctx context.Context) ([]DealerSummary, error) {
	dealers, err := s.dealers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DealerSummary, len(dealers))
	sem := make(chan struct{}, rollupWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, d := range dealers {
		out[i] = DealerSummary{
			DealerID:  d.DealerID,
			Name:      d.Name,
			Status:    d.Status,
			Passcode:  d.Passcode,
			WhatsApp:  d.WhatsApp,
			LogoURL:   d.LogoURL,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}

		wg.Add(1)
		go func(i int, dealerID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			vehicles, err := s.vehicles.List(ctx, dealerID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			leads, err := s.leads.List(ctx, dealerID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			out[i].VehicleCount = len(vehicles)
			out[i].LeadCount = len(leads)
			for _, l := range leads {
				if l.Status == domain.LeadStatusNew {
					out[i].NewLeadCount++
				}
			}
		}(i, d.DealerID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// UpdateDealer applies a partial edit to an existing dealer.
func (s *Service) UpdateDealer(ctx context.Context, dealerID string, req UpdateDealerRequest) (*domain.Dealer, error) {
	d, err := s.dealers.Get(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Status != nil {
		if *req.Status != domain.DealerStatusActive && *req.Status != domain.DealerStatusPaused {
			return nil, ErrValidation
		}
		d.Status = *req.Status
	}
	if req.WhatsApp != nil {
		d.WhatsApp = digitsOnly(*req.WhatsApp)
	}
	if req.LogoURL != nil {
		d.LogoURL = *req.LogoURL
	}
	return s.dealers.Upsert(ctx, *d)
}

// ResetPasscode replaces an existing dealer's passcode with a fresh one and
// returns the dealer carrying the new plaintext.
func (s *Service) ResetPasscode(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	d, err := s.dealers.Get(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	plain := passcode.Generate()
	hash, err := passcode.Hash(plain)
	if err != nil {
		return nil, err
	}
	d.Passcode = plain
	d.PasscodeHash = hash
	return s.dealers.Upsert(ctx, *d)
}

func (s *Service) UpdateLeadStatus(ctx context.Context, dealerID, leadID, status string) error {
	if status == "" {
		return ErrValidation
	}
	return s.leads.UpdateStatus(ctx, dealerID, leadID, status)
}

func (s *Service) GetSettings(ctx context.Context) (map[string]string, error) {
	return s.settings.Get(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, values map[string]string) error {
	return s.settings.Update(ctx, values)
}

func digitsOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
