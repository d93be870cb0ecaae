package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/config"
	"github.com/BruksfildServices01/hbnb/internal/credentials"
	dbpkg "github.com/BruksfildServices01/hbnb/internal/db"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	infraRepo "github.com/BruksfildServices01/hbnb/internal/infra/repository"
	"github.com/BruksfildServices01/hbnb/internal/logging"
	amenityuc "github.com/BruksfildServices01/hbnb/internal/usecase/amenity"
	useruc "github.com/BruksfildServices01/hbnb/internal/usecase/user"
)

var defaultAmenities = []string{"WiFi", "Pool", "Air Conditioning"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, true)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	f := facade.New(
		infraRepo.NewGormStore(db),
		credentials.NewBcryptHasher(cfg.BcryptCost),
		dispatcher,
		nil,
	)

	if err := seed(context.Background(), f, cfg); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func seed(ctx context.Context, f *facade.Facade, cfg *config.Config) error {
	admin, created, err := f.EnsureAdmin(ctx, useruc.CreateUserInput{
		FirstName: "Admin",
		LastName:  "HBnB",
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Bool("created", created).Msg("admin account")

	for _, name := range defaultAmenities {
		_, err := f.CreateAmenity(ctx, authz.Operator(), amenityuc.CreateAmenityInput{Name: name})
		switch {
		case err == nil:
			log.Info().Str("amenity", name).Msg("amenity created")
		case httperr.IsBusiness(err, httperr.KindDuplicateName):
			log.Debug().Str("amenity", name).Msg("amenity exists")
		default:
			return err
		}
	}
	return nil
}
