package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/internal/logger"
	"hotel-reservation/internal/models"
	"hotel-reservation/internal/store"
)

func discardLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard)
}

func TestDefaultCatalogConfig(t *testing.T) {
	cfg := DefaultCatalogConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Rooms, 5)

	for i, room := range cfg.Rooms {
		assert.Equal(t, i+1, room.Number)
	}
	assert.Equal(t, string(models.RoomTypeDeluxe), cfg.Rooms[2].Type)
	assert.Equal(t, string(models.RoomTypeSuite), cfg.Rooms[3].Type)
}

func TestLoadCatalogConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.toml")
		content := `
[[rooms]]
number = 10
type = "deluxe"

[[rooms]]
number = 20
type = "suite"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadCatalogConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg.Rooms, 2)
		assert.Equal(t, 10, cfg.Rooms[0].Number)
		assert.Equal(t, "suite", cfg.Rooms[1].Type)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalogConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load catalog config")
	})
}

func TestCatalogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CatalogConfig
		wantErr string
	}{
		{
			name:    "empty catalog",
			cfg:     CatalogConfig{},
			wantErr: "no rooms",
		},
		{
			name: "non-positive number",
			cfg: CatalogConfig{Rooms: []RoomConfig{
				{Number: 0, Type: "deluxe"},
			}},
			wantErr: "not positive",
		},
		{
			name: "duplicate number",
			cfg: CatalogConfig{Rooms: []RoomConfig{
				{Number: 1, Type: "deluxe"},
				{Number: 1, Type: "suite"},
			}},
			wantErr: "more than once",
		},
		{
			name: "unknown type",
			cfg: CatalogConfig{Rooms: []RoomConfig{
				{Number: 1, Type: "penthouse"},
			}},
			wantErr: "unknown room type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedCatalog(t *testing.T) {
	t.Run("seeds an empty store", func(t *testing.T) {
		st, err := store.NewSQLiteStore(store.MemoryDSN)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, st.Close())
		}()

		require.NoError(t, SeedCatalog(discardLogger(), st, DefaultCatalogConfig()))

		rooms, err := st.ListAvailableRooms()
		require.NoError(t, err)
		assert.Len(t, rooms, 5)
	})

	t.Run("leaves a populated store untouched", func(t *testing.T) {
		st, err := store.NewSQLiteStore(store.MemoryDSN)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, st.Close())
		}()

		require.NoError(t, st.SaveRoom(&models.Room{Number: 7, Type: models.RoomTypeSuite, Available: false}))
		require.NoError(t, SeedCatalog(discardLogger(), st, DefaultCatalogConfig()))

		count, err := st.CountRooms()
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// The booked flag survived the second startup.
		room, err := st.GetRoomByNumber(7)
		require.NoError(t, err)
		assert.False(t, room.Available)
	})
}
