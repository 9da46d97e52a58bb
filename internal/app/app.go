package app

import (
	"errors"
	"fmt"
	"io"

	"hotel-reservation/internal/config"
	"hotel-reservation/internal/logger"
	"hotel-reservation/internal/service"
	"hotel-reservation/internal/store"
)

// App wires configuration, storage and the reservation service together.
type App struct {
	config       *config.Config
	logger       *logger.Logger
	store        store.Store
	reservations *service.ReservationService
}

func New(cfg *config.Config, l *logger.Logger) *App {
	if l == nil {
		l = logger.NewWithWriter(io.Discard)
	}
	return &App{
		config: cfg,
		logger: l,
	}
}

// Initialize opens the store and seeds the room catalog.
func (a *App) Initialize() error {
	st, err := store.NewSQLiteStore(a.config.StoreDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = st

	catalogCfg := service.DefaultCatalogConfig()
	if a.config.CatalogPath != "" {
		catalogCfg, err = service.LoadCatalogConfig(a.config.CatalogPath)
		if err != nil {
			if cerr := st.Close(); cerr != nil {
				return errors.Join(err, cerr)
			}
			return err
		}
	}

	if err := service.SeedCatalog(a.logger, st, catalogCfg); err != nil {
		if cerr := st.Close(); cerr != nil {
			return errors.Join(err, cerr)
		}
		return fmt.Errorf("seed catalog: %w", err)
	}

	a.reservations = service.NewReservationService(a.logger, st, service.StandardBill)
	a.logger.Info("Application initialized", logger.Action("startup"), logger.Status("ready"))
	return nil
}

// Reservations returns the reservation service. Initialize must have been
// called first.
func (a *App) Reservations() *service.ReservationService {
	return a.reservations
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
