// Package boltorder keeps manual session orders in a bbolt file, one key per
// workspace bucket. It is the alternative to the SQLite manual_orders table.
package boltorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

var bucketManualOrders = []byte("manual_orders")

// Store implements ports.ManualOrderStore on top of bbolt
type Store struct {
	db *bolt.DB
}

var _ ports.ManualOrderStore = (*Store)(nil)

// Open opens (or creates) the order file at path
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("order db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open order db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketManualOrders)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init order db: %w", err)
	}

	logging.Logger.Debug("Order db opened", "path", path)
	return &Store{db: db}, nil
}

// Close closes the underlying file
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load implements ManualOrderStore.Load
func (s *Store) Load(ctx context.Context) (map[domain.WorkspaceKey][]string, error) {
	orders := make(map[domain.WorkspaceKey][]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketManualOrders)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var ids []string
			if err := json.Unmarshal(v, &ids); err != nil {
				return fmt.Errorf("bad order for %q: %w", string(k), err)
			}
			if len(ids) > 0 {
				orders[domain.ParseWorkspaceKey(string(k))] = ids
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load manual orders: %w", err)
	}
	return orders, nil
}

// Save implements ManualOrderStore.Save. Keys missing from orders are removed.
func (s *Store) Save(ctx context.Context, orders map[domain.WorkspaceKey][]string) error {
	encoded := make(map[string][]byte, len(orders))
	for key, ids := range orders {
		if len(ids) == 0 {
			continue
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		encoded[key.String()] = raw
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketManualOrders); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(bucketManualOrders)
		if err != nil {
			return err
		}
		for key, raw := range encoded {
			if err := b.Put([]byte(key), raw); err != nil {
				return err
			}
		}
		return nil
	})
}
