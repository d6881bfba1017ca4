package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/handler"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/server"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const cmdIssueToken = "issue-token"

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)

	log := logger.NewLogger("fieldsync-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.App.TokenIssuer).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == cmdIssueToken {
		issueToken(ctx, services, cfg.Args[1:], log)
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// issueToken prints a bearer token for the worker named by args.
func issueToken(ctx context.Context, services *service.Services, args []string, log *logger.Logger) {
	if len(args) == 0 {
		log.Fatal().Msg("usage: server issue-token <worker-id>")
	}

	token, err := services.AuthService.CreateToken(ctx, args[0])
	if err != nil {
		log.Fatal().Err(err).Str("worker_id", args[0]).Msg("error issuing token")
	}

	fmt.Println(token.SignedString)
}
