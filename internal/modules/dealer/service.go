package dealer

import (
	"context"
	"errors"

	"carsalesweblink/internal/domain"
	jwtsvc "carsalesweblink/internal/pkg/jwt"
	"carsalesweblink/internal/pkg/passcode"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
)

// Service contains the dealer portal's business logic: passcode login and the
// dealer's own vehicle and lead management.
type Service struct {
	dealers  *repository.DealerRepository
	vehicles *repository.VehicleRepository
	leads    *repository.LeadRepository
	jwt      *jwtsvc.Service
}

func NewService(
	dealers *repository.DealerRepository,
	vehicles *repository.VehicleRepository,
	leads *repository.LeadRepository,
	jwt *jwtsvc.Service,
) *Service {
	return &Service{
		dealers:  dealers,
		vehicles: vehicles,
		leads:    leads,
		jwt:      jwt,
	}
}

// Login checks the passcode and issues a portal token. An unknown dealer and
// a wrong passcode are indistinguishable to the caller. Rows created before
// hashing carry only the plaintext column, so verification falls back to it
// when no hash is stored.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, *domain.Dealer, error) {
	d, err := s.dealers.Get(ctx, req.DealerID)
	if err != nil {
		if errors.Is(err, sheets.ErrNotFound) || errors.Is(err, repository.ErrInvalidDealerID) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok := passcode.Verify(req.Passcode, d.PasscodeHash)
	if !ok && d.PasscodeHash == "" && d.Passcode != "" {
		ok = req.Passcode == d.Passcode
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(d.DealerID, jwtsvc.RoleDealer)
	if err != nil {
		return "", nil, err
	}
	return token, d, nil
}

func (s *Service) Vehicles(ctx context.Context, dealerID string) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, dealerID)
}

// UpsertVehicle writes a vehicle through the repository's upsert-by-id
// protocol; a request without a vehicleId always inserts.
func (s *Service) UpsertVehicle(ctx context.Context, dealerID string, req VehicleRequest) (*domain.Vehicle, error) {
	v := domain.Vehicle{
		VehicleID: req.VehicleID,
		Title:     req.Title,
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Price:     req.Price,
		Status:    req.Status,
		Notes:     req.Notes,
		HeroImage: req.HeroImage,
		HeroVideo: req.HeroVideo,
		Images:    req.Images,
	}
	return s.vehicles.Upsert(ctx, dealerID, v)
}

func (s *Service) Leads(ctx context.Context, dealerID string) ([]domain.Lead, error) {
	return s.leads.List(ctx, dealerID)
}

func (s *Service) UpdateLeadStatus(ctx context.Context, dealerID, leadID, status string) error {
	if status == "" {
		return ErrValidation
	}
	return s.leads.UpdateStatus(ctx, dealerID, leadID, status)
}
