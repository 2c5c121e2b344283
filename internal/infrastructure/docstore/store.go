// Package docstore implements repository.DocumentStore on MongoDB, Firestore
// and an in-process map, selected by the connection string scheme.
package docstore

import (
	"context"
	"fmt"
	"sync"

	"gamevault/internal/domain/repository"
	"gamevault/pkg/config"
	apperrors "gamevault/pkg/errors"
	"gamevault/pkg/logger"
)

// connector opens sessions against one backend.
type connector interface {
	connect(ctx context.Context) (session, error)
	backend() string
}

// session is a live client. In per_request mode one is opened and closed
// around every store call.
type session interface {
	insert(ctx context.Context, collection string, document interface{}) (string, error)
	findAll(ctx context.Context, collection string) ([]repository.Record, error)
	ping(ctx context.Context) error
	close(ctx context.Context) error
}

// Store applies the configured connection mode on top of a backend connector.
type Store struct {
	connector connector
	mode      string

	mu     sync.RWMutex
	shared session
	closed bool
}

var _ repository.DocumentStore = (*Store)(nil)

func newStore(ctx context.Context, c connector, mode string) (*Store, error) {
	store := &Store{connector: c, mode: mode}

	switch mode {
	case config.ConnectionModePooled:
		sess, err := c.connect(ctx)
		if err != nil {
			return nil, storageError("connect", "", err)
		}
		store.shared = sess
	case config.ConnectionModePerRequest:
	default:
		return nil, fmt.Errorf("unknown connection mode %q", mode)
	}

	logger.Info("Document store ready: backend=%s, mode=%s", c.backend(), mode)
	return store, nil
}

func (s *Store) Mode() string {
	return s.mode
}

func (s *Store) Backend() string {
	return s.connector.backend()
}

func (s *Store) Insert(ctx context.Context, collection string, document interface{}) (string, error) {
	var id string
	err := s.withSession(ctx, collection, func(sess session) error {
		var err error
		id, err = sess.insert(ctx, collection, document)
		if err != nil {
			return storageError("insert", collection, err)
		}
		return nil
	})
	return id, err
}

func (s *Store) FindAll(ctx context.Context, collection string) ([]repository.Record, error) {
	var records []repository.Record
	err := s.withSession(ctx, collection, func(sess session) error {
		var err error
		records, err = sess.findAll(ctx, collection)
		if err != nil {
			return storageError("find", collection, err)
		}
		return nil
	})
	return records, err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.withSession(ctx, "", func(sess session) error {
		if err := sess.ping(ctx); err != nil {
			return storageError("ping", "", err)
		}
		return nil
	})
}

// Close releases the pooled client. It is a no-op in per_request mode.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.shared == nil {
		return nil
	}
	err := s.shared.close(ctx)
	s.shared = nil
	if err != nil {
		return storageError("close", "", err)
	}
	return nil
}

func (s *Store) withSession(ctx context.Context, collection string, fn func(session) error) error {
	if s.mode == config.ConnectionModePooled {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.closed || s.shared == nil {
			return storageError("use", collection, fmt.Errorf("store is closed"))
		}
		return fn(s.shared)
	}

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return storageError("use", collection, fmt.Errorf("store is closed"))
	}

	sess, err := s.connector.connect(ctx)
	if err != nil {
		return storageError("connect", collection, err)
	}
	defer func() {
		if cerr := sess.close(context.WithoutCancel(ctx)); cerr != nil {
			logger.Warn("Failed to close %s session: %v", s.connector.backend(), cerr)
		}
	}()

	return fn(sess)
}

func storageError(op, collection string, err error) error {
	if collection == "" {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, op, err)
	}
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrStorage, op, collection, err)
}
