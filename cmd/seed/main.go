package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"carsalesweblink/internal/config"
	"carsalesweblink/internal/modules/admin"
	"carsalesweblink/internal/repository"
	"carsalesweblink/internal/sheets"
)

// Provisions the admin and settings tabs and creates one dealer, printing its
// generated passcode. Safe to rerun: provisioning is idempotent and the
// dealer row is upserted.
func main() {
	dealerID := flag.String("dealer", "DM001", "dealer id to create (2 letters + 3 digits)")
	name := flag.String("name", "Demo Motors", "dealer name")
	whatsapp := flag.String("whatsapp", "", "dealer WhatsApp number, digits only")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var opts []option.ClientOption
	if cfg.GoogleCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON)))
	} else if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}
	store, err := sheets.NewGoogleStore(ctx, cfg.SpreadsheetID, opts...)
	if err != nil {
		log.Fatal(err)
	}

	tabs := repository.NewDealerTabs(store, cfg)
	dealerRepo := repository.NewDealerRepository(store, cfg)
	vehicleRepo := repository.NewVehicleRepository(store, tabs)
	leadRepo := repository.NewLeadRepository(store, tabs)
	settingsRepo := repository.NewSettingsRepository(store, cfg)

	log.Println("Provisioning settings tab...")
	if _, err := settingsRepo.Get(ctx); err != nil {
		log.Fatal(err)
	}

	svc := admin.NewService(dealerRepo, vehicleRepo, leadRepo, settingsRepo)

	log.Printf("Creating dealer %s...", *dealerID)
	d, err := svc.CreateDealer(ctx, admin.CreateDealerRequest{
		DealerID: *dealerID,
		Name:     *name,
		WhatsApp: *whatsapp,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Touch the dealer tab so both header rows exist before first use.
	if _, err := vehicleRepo.List(ctx, d.DealerID); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("dealer:   %s (%s)\n", d.DealerID, d.Name)
	fmt.Printf("passcode: %s\n", d.Passcode)
}
