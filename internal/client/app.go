package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/internal/tui"
	"github.com/MKhiriev/fieldsync/internal/workers"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/goccy/go-json"
)

const (
	cmdSync        = "sync"
	cmdImport      = "import"
	cmdAddReading  = "add-reading"
	cmdEditPatient = "edit-patient"
	cmdStatus      = "status"
	cmdVersion     = "version"
)

// App is the client command line application.
type App struct {
	services    *service.ClientServices
	checkpoints store.CheckpointStore
	// ui is nil when stdout is not a terminal; progress is logged instead.
	ui      *tui.TUI
	workers config.ClientWorkers
	args    []string
	info    models.AppBuildInfo
	out     io.Writer

	logger *logger.Logger
}

// NewApp wires the application. ui may be nil.
func NewApp(
	services *service.ClientServices,
	checkpoints store.CheckpointStore,
	ui *tui.TUI,
	cfg *config.ClientConfig,
	info models.AppBuildInfo,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || checkpoints == nil {
		return nil, ErrNoClientServices
	}

	return &App{
		services:    services,
		checkpoints: checkpoints,
		ui:          ui,
		workers:     cfg.Workers,
		args:        cfg.Args,
		info:        info,
		out:         os.Stdout,
		logger:      logger,
	}, nil
}

// Run implements Client. Without arguments it runs the sync command.
func (a *App) Run(ctx context.Context) error {
	command := cmdSync
	var rest []string
	if len(a.args) > 0 {
		command, rest = a.args[0], a.args[1:]
	}

	a.logger.Debug().Str("func", "App.Run").Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case cmdSync:
		return a.sync(ctx)
	case cmdImport:
		return a.importPatients(ctx, rest)
	case cmdAddReading:
		return a.addReading(ctx, rest)
	case cmdEditPatient:
		return a.editPatient(ctx, rest)
	case cmdStatus:
		return a.status(ctx)
	case cmdVersion:
		_, err := fmt.Fprintln(a.out, a.info.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// sync runs one cycle right away. With a sync interval configured it then
// keeps the periodic job running until ctx is cancelled.
func (a *App) sync(ctx context.Context) error {
	outcome, err := a.runCycle(ctx)
	if err != nil {
		return err
	}

	if a.workers.SyncInterval <= 0 {
		if !outcome.Success {
			return ErrSyncIncomplete
		}
		return nil
	}

	background := workers.NewWorkers(a.services.SyncJob)
	background.Run()
	a.logger.Info().Str("func", "App.sync").Dur("interval", a.workers.SyncInterval).Msg("waiting for periodic sync, interrupt to stop")

	<-ctx.Done()
	background.Stop()
	return nil
}

func (a *App) runCycle(ctx context.Context) (models.CycleOutcome, error) {
	if a.workers.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.workers.CycleTimeout)
		defer cancel()
	}

	if a.ui == nil {
		return a.services.SyncService.RunSyncCycle(ctx, service.LogCallback{Logger: a.logger}), nil
	}
	return a.ui.RunSync(ctx, a.services.SyncService.RunSyncCycle)
}

func (a *App) importPatients(ctx context.Context, args []string) error {
	var patients []models.PatientAndReadings
	if err := readJSONFile(args, &patients); err != nil {
		return err
	}

	n, err := a.services.DataService.ImportPatients(ctx, patients)
	if err != nil {
		return fmt.Errorf("import patients: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "imported %d patients\n", n)
	return err
}

func (a *App) addReading(ctx context.Context, args []string) error {
	var reading models.Reading
	if err := readJSONFile(args, &reading); err != nil {
		return err
	}

	if err := a.services.DataService.AddReading(ctx, reading); err != nil {
		return fmt.Errorf("add reading: %w", err)
	}

	_, err := fmt.Fprintf(a.out, "reading added for patient %s\n", reading.PatientID)
	return err
}

func (a *App) editPatient(ctx context.Context, args []string) error {
	var patient models.Patient
	if err := readJSONFile(args, &patient); err != nil {
		return err
	}

	if err := a.services.DataService.EditPatient(ctx, patient); err != nil {
		return fmt.Errorf("edit patient: %w", err)
	}

	_, err := fmt.Fprintf(a.out, "patient %s updated\n", patient.ID)
	return err
}

func (a *App) status(ctx context.Context) error {
	pending, err := a.services.DataService.Pending(ctx)
	if err != nil {
		return fmt.Errorf("count pending records: %w", err)
	}

	lastSync, err := a.checkpoints.LastSync(ctx)
	if err != nil {
		return fmt.Errorf("read sync checkpoint: %w", err)
	}

	_, err = fmt.Fprintln(a.out, tui.RenderStatus(a.info, pending, lastSync, time.Now()))
	return err
}

func readJSONFile(args []string, v any) error {
	if len(args) == 0 {
		return ErrMissingFile
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	return nil
}
