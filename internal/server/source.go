package server

import (
	"fmt"

	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/db"
	"github.com/javiermolinar/pagetable/internal/store"
)

// OpenSource opens the record source selected by cfg.Source.
func OpenSource(cfg config.ServerConfig) (store.Source, error) {
	switch cfg.Source {
	case "", config.SourceMemory:
		src, err := store.LoadJSONFile(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		return src, nil
	case config.SourceSQLite:
		src, err := db.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
