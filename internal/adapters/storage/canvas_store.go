package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
	"github.com/eleven-am/stepgraph/internal/xjson"
)

// BadgerCanvasStore keeps session canvases in a local Badger database so
// bounds survive process restarts.
type BadgerCanvasStore struct {
	db     *badger.DB
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

var _ ports.CanvasStore = (*BadgerCanvasStore)(nil)

func OpenBadgerCanvasStore(dataDir string, logger *slog.Logger) (*BadgerCanvasStore, error) {
	if dataDir == "" {
		return nil, domain.NewConfigError("storage.data_dir", domain.ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "canvas-store", "type", "badger")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dataDir)
	opts.Logger = &badgerLogger{logger: logger.With("component", "badger-log")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dataDir, err)
	}

	logger.Debug("canvas store opened", "data_dir", dataDir)
	return NewBadgerCanvasStore(db, logger), nil
}

// NewBadgerCanvasStore wraps an already open database. Closing the store
// closes db.
func NewBadgerCanvasStore(db *badger.DB, logger *slog.Logger) *BadgerCanvasStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BadgerCanvasStore{db: db, logger: logger}
}

func (s *BadgerCanvasStore) Load(ctx context.Context, sessionID string) (domain.Canvas, bool, error) {
	if err := s.check(ctx); err != nil {
		return domain.Canvas{}, false, err
	}
	defer s.mu.RUnlock()

	var canvas domain.Canvas
	exists := false
	err := s.db.View(func(txn *badger.Txn) error {
		c, ok, err := readCanvas(txn, sessionID)
		canvas, exists = c, ok
		return err
	})
	if err != nil {
		return domain.Canvas{}, false, fmt.Errorf("failed to load canvas for %s: %w", sessionID, err)
	}
	return canvas, exists, nil
}

func (s *BadgerCanvasStore) Grow(ctx context.Context, sessionID string, canvas domain.Canvas) (domain.Canvas, error) {
	if err := s.check(ctx); err != nil {
		return domain.Canvas{}, err
	}
	defer s.mu.RUnlock()

	var grown domain.Canvas
	for {
		if err := ctx.Err(); err != nil {
			return domain.Canvas{}, err
		}
		err := s.db.Update(func(txn *badger.Txn) error {
			current, _, err := readCanvas(txn, sessionID)
			if err != nil {
				return err
			}
			grown = current.Grow(canvas)
			if grown == current {
				return nil
			}

			data, err := xjson.Marshal(grown)
			if err != nil {
				return err
			}
			return txn.Set([]byte(domain.CanvasKey(sessionID)), data)
		})
		if errors.Is(err, badger.ErrConflict) {
			s.logger.Debug("canvas write conflict, retrying", "session_id", sessionID)
			continue
		}
		if err != nil {
			return domain.Canvas{}, fmt.Errorf("failed to grow canvas for %s: %w", sessionID, err)
		}
		break
	}

	s.logger.Debug("canvas grown", "session_id", sessionID, "width", grown.Width, "height", grown.Height)
	return grown, nil
}

func (s *BadgerCanvasStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(domain.CanvasKey(sessionID)))
	})
	if err != nil {
		return fmt.Errorf("failed to delete canvas for %s: %w", sessionID, err)
	}
	return nil
}

func (s *BadgerCanvasStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// check returns with the read lock held when err is nil.
func (s *BadgerCanvasStore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return domain.ErrClosed
	}
	return nil
}

func readCanvas(txn *badger.Txn, sessionID string) (domain.Canvas, bool, error) {
	item, err := txn.Get([]byte(domain.CanvasKey(sessionID)))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.Canvas{}, false, nil
		}
		return domain.Canvas{}, false, err
	}

	var canvas domain.Canvas
	err = item.Value(func(val []byte) error {
		return xjson.Unmarshal(val, &canvas)
	})
	if err != nil {
		return domain.Canvas{}, false, err
	}
	return canvas, true, nil
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(f, v...))
}
