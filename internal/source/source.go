// Package source enumerates the bodies of a design from an external store.
package source

import (
	"context"
	"fmt"

	"github.com/dbsmedya/partlist/internal/body"
	"github.com/dbsmedya/partlist/internal/config"
	"github.com/dbsmedya/partlist/internal/database"
	"github.com/dbsmedya/partlist/internal/logger"
)

// Enumerator lists the bodies of one design in traversal order.
type Enumerator interface {
	Enumerate(ctx context.Context) (*body.Design, error)
}

// Open builds the Enumerator described by cfg. The returned close function
// releases any connection the source holds and is always non-nil.
func Open(ctx context.Context, cfg *config.SourceConfig, log *logger.Logger) (Enumerator, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case config.SourceFile:
		return NewFileSource(cfg.Path, log), noop, nil

	case config.SourceMySQL:
		manager := database.NewManager(&cfg.Database)
		if err := manager.Connect(ctx); err != nil {
			return nil, noop, err
		}
		if err := manager.Ping(ctx); err != nil {
			manager.Close()
			return nil, noop, err
		}
		src, err := NewMySQLSource(manager.DB, cfg.Table, cfg.Design, log)
		if err != nil {
			manager.Close()
			return nil, noop, err
		}
		return src, manager.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown source type %q", cfg.Type)
	}
}
