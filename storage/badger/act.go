package badger

import (
	"context"
	"strings"
	"time"

	"github.com/caralegal/cara/core"
	"github.com/caralegal/cara/storage"
	"github.com/dgraph-io/badger/v4"
)

// ActRepository implements storage.ActRepository for BadgerDB.
type ActRepository struct {
	backend *Backend
}

var _ storage.ActRepository = (*ActRepository)(nil)

// NewActRepository creates a new ActRepository.
func NewActRepository(backend *Backend) (*ActRepository, error) {
	return &ActRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ActRepository has no resources to release.
func (r *ActRepository) Close() error {
	return nil
}

// AddActs adds one or more acts to storage.
func (r *ActRepository) AddActs(ctx context.Context, acts ...*core.Act) ([]*core.Act, error) {
	for _, act := range acts {
		if err := core.ValidateAct(act); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, act := range acts {
			// Use content-based ID if not set
			if act.Id == 0 {
				act.Id = core.IDFromContent(act.Title)
			}

			// Set timestamps
			act.InsertedAt = time.Now().UTC()
			act.UpdatedAt = act.InsertedAt

			// Store primary record
			key := makeActKey(uint64(act.Id))
			value := storage.MarshalAct(act)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store title index
			titleKey := makeActTitleKey(act.Title)
			if err := tx.Set(titleKey, storage.MarshalID(act.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return acts, err
}

// GetAct retrieves a single act by ID.
func (r *ActRepository) GetAct(ctx context.Context, id core.ID) (*core.Act, error) {
	var result *core.Act
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeActKey(uint64(id))
		var err error
		result, err = readAct(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindActByTitle finds an act by its title. Matching is case-insensitive.
func (r *ActRepository) FindActByTitle(ctx context.Context, title string) (*core.Act, error) {
	var result *core.Act
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from title index
		titleKey := makeActTitleKey(title)
		item, err := tx.Get(titleKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var actID core.ID
		err = item.Value(func(val []byte) error {
			actID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full act
		result, err = readAct(tx, makeActKey(uint64(actID)))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// SearchActs finds acts whose title contains the query, case-insensitive.
// The title index is scanned in order, so results come back sorted by
// case-folded title.
func (r *ActRepository) SearchActs(ctx context.Context, query string, limit int) ([]*core.Act, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	var results []*core.Act
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(actTitlePrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			if !hasPrefix(key, prefix) {
				break
			}

			// Index keys carry the lowercased title after the prefix.
			title := string(key[len(prefix):])
			if !strings.Contains(title, needle) {
				continue
			}

			var actID core.ID
			err := item.Value(func(val []byte) error {
				var err error
				actID, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			act, err := readAct(tx, makeActKey(uint64(actID)))
			if err != nil {
				return err
			}
			if act != nil {
				results = append(results, act)
				if len(results) >= limit {
					break
				}
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllActs retrieves every act, ordered by case-folded title.
func (r *ActRepository) GetAllActs(ctx context.Context) ([]*core.Act, error) {
	var results []*core.Act
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(actTitlePrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			if !hasPrefix(item.Key(), prefix) {
				break
			}

			var actID core.ID
			err := item.Value(func(val []byte) error {
				var err error
				actID, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			act, err := readAct(tx, makeActKey(uint64(actID)))
			if err != nil {
				return err
			}
			if act != nil {
				results = append(results, act)
			}
		}
		return nil
	}, false)

	return results, err
}

// Count returns the number of acts in the dataset.
func (r *ActRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(actRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			if !hasPrefix(iter.Item().Key(), prefix) {
				break
			}
			count++
		}
		return nil
	}, false)

	return count, err
}

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readAct reads an act from the transaction.
func readAct(tx *badger.Txn, key []byte) (*core.Act, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var act *core.Act
	err = item.Value(func(val []byte) error {
		var err error
		act, err = storage.UnmarshalAct(val)
		return err
	})
	return act, err
}
