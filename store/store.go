// Package store persists trained classifiers in a bbolt database so the
// CLI can train once and classify many times without retraining.
package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
)

const schemaVersion = 1

var (
	bucketModel = []byte("model")
	bucketMeta  = []byte("meta")
	keyModel    = []byte("classifier")
	keyVersion  = []byte("schema_version")

	// ErrNoModel is returned when the store holds no trained model yet.
	ErrNoModel = errors.New("store: no trained model; run train first")
	// ErrSchemaMismatch is returned when the store was written by an
	// incompatible version; retraining rebuilds it.
	ErrSchemaMismatch = errors.New("store: incompatible schema version; retrain to rebuild")
)

// Store wraps a bbolt database holding one trained model.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the model store at path and verifies its
// schema version.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open model store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketModel, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMeta)
		raw := meta.Get(keyVersion)
		if raw == nil {
			return meta.Put(keyVersion, encodeVersion(schemaVersion))
		}
		if version, ok := decodeVersion(raw); !ok || version != schemaVersion {
			return ErrSchemaMismatch
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveModel writes the trained classifier into the store, replacing any
// previous model.
func (s *Store) SaveModel(c *bayes.Classifier) error {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketModel).Put(keyModel, buf.Bytes())
	})
}

// LoadModel reads the stored model into a fresh classifier built with
// the given options. The tokenizer option must match the one used at
// training time.
func (s *Store) LoadModel(opts ...bayes.Option) (*bayes.Classifier, error) {
	var blob []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketModel).Get(keyModel)
		if raw == nil {
			return ErrNoModel
		}
		blob = append(blob, raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	classifier := bayes.NewClassifier(opts...)
	if err := classifier.Load(bytes.NewReader(blob)); err != nil {
		return nil, err
	}
	return classifier, nil
}

// HasModel reports whether a trained model has been stored.
func (s *Store) HasModel() (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketModel).Get(keyModel) != nil
		return nil
	})
	return found, err
}

func encodeVersion(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeVersion(raw []byte) (uint64, bool) {
	if len(raw) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(raw), true
}
