// Package repositories persists what lives outside the engine core: the
// caption-priority order behind the group comparator.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"roomlist-lab/domain"
)

const tagsOrderKey = "settings:tags_order"

type ISettingsRepository interface {
	LoadTagsOrder() ([]string, error)
	SaveTagsOrder(order []string) error
}

type SettingsRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSettingsRepository(db *badger.DB, log *slog.Logger) SettingsRepository {
	return SettingsRepository{db: db, log: log}
}

// LoadTagsOrder returns the persisted caption-priority list. When nothing
// has been saved yet, the default order is seeded and returned, so later
// reads and writes work against an explicit value.
func (s SettingsRepository) LoadTagsOrder() ([]string, error) {
	var order []string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tagsOrderKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &order)
		})
	})
	if err == badger.ErrKeyNotFound {
		s.log.Info("No tags order persisted yet, seeding the default")
		if err := s.SaveTagsOrder(domain.DefaultPriority); err != nil {
			return nil, err
		}
		return append([]string(nil), domain.DefaultPriority...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tags order: %w", err)
	}
	return order, nil
}

func (s SettingsRepository) SaveTagsOrder(order []string) error {
	bytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tagsOrderKey), bytes)
	})
}
