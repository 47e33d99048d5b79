package core

import (
	"fmt"
	"log/slog"

	"github.com/eleven-am/stepgraph/internal/adapters/memory"
	"github.com/eleven-am/stepgraph/internal/adapters/storage"
	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
)

func createCanvasStore(config domain.StorageConfig, logger *slog.Logger) (ports.CanvasStore, error) {
	switch config.Type {
	case domain.StorageMemory:
		return memory.NewMemoryCanvasStore(logger), nil
	case domain.StorageBadger:
		store, err := storage.OpenBadgerCanvasStore(config.DataDir, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, domain.NewConfigError("storage.type", fmt.Errorf("%w: %q", domain.ErrInvalidInput, config.Type))
	}
}
