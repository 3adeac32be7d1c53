package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/mole-strike/config"
	"github.com/lixenwraith/mole-strike/storage"
	"github.com/lixenwraith/mole-strike/storage/filestore"
	"github.com/lixenwraith/mole-strike/storage/sqlite"
)

const sqliteFileName = "mole-strike.db"

// openStore opens the slot backend selected by the configuration
func openStore(cfg *config.Config) (storage.Slots, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		s, err := sqlite.Open(filepath.Join(cfg.Storage.DataDir, sqliteFileName))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case config.BackendFile:
		s, err := filestore.Open(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
