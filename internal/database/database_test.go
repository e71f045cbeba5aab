package database

import (
	"testing"

	"chorus/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns: 10,
		DBMaxIdleConns: 5,
	}
	assert.NoError(t, configurePool(db, cfg))

	// Zero values fall back to defaults without error.
	assert.NoError(t, configurePool(db, &config.Config{}))
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		env     string
		runSQL  bool
		runAuto bool
		wantErr bool
	}{
		{"hybrid dev", "hybrid", "development", true, true, false},
		{"hybrid prod", "hybrid", "production", true, false, false},
		{"default is hybrid", "", "development", true, true, false},
		{"sql only", "sql", "production", true, false, false},
		{"auto dev", "auto", "development", false, true, false},
		{"auto refused in prod", "auto", "production", false, false, true},
		{"auto refused in staging", "auto", "staging", false, false, true},
		{"unknown mode", "yolo", "development", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DBSchemaMode: tt.mode, Env: tt.env}
			runSQL, runAuto, err := schemaPolicy(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.runSQL, runSQL)
			assert.Equal(t, tt.runAuto, runAuto)
		})
	}
}

func TestMigrationRegistry(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)

	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version, "migrations must be ordered by version")
	}
	for _, m := range ms {
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
	}

	first := GetMigrationByVersion(ms[0].Version)
	require.NotNil(t, first)
	assert.Equal(t, ms[0].Name, first.Name)
	assert.Nil(t, GetMigrationByVersion(999999))
}

func TestAutoMigrateModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, runAutoMigrate(db))
	for _, table := range []string{"users", "artists", "labels", "albums", "songs", "playlists", "playlist_songs"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}
