package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fieldsync/internal/adapter"
	"github.com/MKhiriev/fieldsync/internal/client"
	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/internal/tui"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/charmbracelet/x/term"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("fieldsync-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	var (
		ui         *tui.TUI
		dispatcher service.Dispatcher
		cb         service.SyncCallback = service.LogCallback{Logger: log}
	)
	if term.IsTerminal(os.Stdout.Fd()) {
		ui = tui.New(info, log)
	} else {
		// progress lines keep event order and never stall sync workers
		serial := service.NewSerialDispatcher(0)
		defer serial.Close()
		dispatcher = serial
	}

	services := service.NewClientServices(localStorage, serverAdapter, *cfg, cb, dispatcher, log)

	app, err := client.NewApp(services, localStorage.Checkpoints, ui, cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}
