package service

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"hotel-reservation/internal/logger"
	"hotel-reservation/internal/models"
	"hotel-reservation/internal/store"
)

// RoomConfig describes one catalog entry in the preset file.
type RoomConfig struct {
	Number int    `toml:"number"`
	Type   string `toml:"type"`
}

// CatalogConfig holds the room catalog preset. The catalog is fixed for the
// process lifetime; there is no add/remove operation at runtime.
// Source: TOML configuration file, or the built-in default.
type CatalogConfig struct {
	Rooms []RoomConfig `toml:"rooms"`
}

// LoadCatalogConfig loads a room catalog preset from a TOML file.
func LoadCatalogConfig(path string) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load catalog config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultCatalogConfig returns the built-in preset: rooms 1-3 are deluxe
// rooms, rooms 4 and 5 are suites.
func DefaultCatalogConfig() *CatalogConfig {
	cfg := &CatalogConfig{}
	for i := 1; i <= 3; i++ {
		cfg.Rooms = append(cfg.Rooms, RoomConfig{Number: i, Type: string(models.RoomTypeDeluxe)})
	}
	for i := 4; i <= 5; i++ {
		cfg.Rooms = append(cfg.Rooms, RoomConfig{Number: i, Type: string(models.RoomTypeSuite)})
	}
	return cfg
}

// Validate checks room numbers are positive and unique and types are known.
func (c *CatalogConfig) Validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("catalog config defines no rooms")
	}
	seen := make(map[int]bool, len(c.Rooms))
	for _, room := range c.Rooms {
		if room.Number <= 0 {
			return fmt.Errorf("room number %d is not positive", room.Number)
		}
		if seen[room.Number] {
			return fmt.Errorf("room number %d appears more than once", room.Number)
		}
		seen[room.Number] = true
		if _, err := models.ParseRoomType(room.Type); err != nil {
			return fmt.Errorf("room %d: %w", room.Number, err)
		}
	}
	return nil
}

// SeedCatalog populates an empty store with the configured rooms, all
// available. A store that already holds rooms is left untouched so a
// file-backed store keeps its availability flags across restarts.
func SeedCatalog(l *logger.Logger, st store.Store, cfg *CatalogConfig) error {
	count, err := st.CountRooms()
	if err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if count > 0 {
		l.Info("Catalog already seeded", logger.Action("seed"), logger.Status("skipped"), logger.Count(count))
		return nil
	}

	for _, rc := range cfg.Rooms {
		roomType, err := models.ParseRoomType(rc.Type)
		if err != nil {
			return fmt.Errorf("room %d: %w", rc.Number, err)
		}
		room := &models.Room{
			Number:    rc.Number,
			Type:      roomType,
			Available: true,
		}
		if err := st.SaveRoom(room); err != nil {
			return fmt.Errorf("save room %d: %w", rc.Number, err)
		}
	}

	l.Info("Catalog seeded", logger.Action("seed"), logger.Status("done"), logger.Count(len(cfg.Rooms)))
	return nil
}
