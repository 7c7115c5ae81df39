package prefs

import (
	"github.com/pkg/errors"
	ai "github.com/spetersoncode/parley"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketName  = []byte("preferences")
	keyProvider = []byte("provider")
	keyAPIKey   = []byte("apiKey")
)

// BoltStore persists preferences in a bbolt file database: one bucket,
// two string entries, no schema versioning.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the preference database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening preference db %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating preference bucket")
	}
	return &BoltStore{db: db}, nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load reads the persisted preferences.
func (s *BoltStore) Load() (Preferences, bool, error) {
	var p Preferences
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		key := b.Get(keyAPIKey)
		if key == nil {
			return nil
		}
		ok = true
		p.APIKey = string(key)
		p.Provider = ai.Provider(b.Get(keyProvider))
		return nil
	})
	if err != nil {
		return Preferences{}, false, errors.Wrap(err, "loading preferences")
	}
	return p, ok, nil
}

// Save overwrites both fields durably after validation.
func (s *BoltStore) Save(p Preferences) error {
	if err := validate(p); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Put(keyProvider, []byte(p.Provider)); err != nil {
			return err
		}
		return b.Put(keyAPIKey, []byte(p.APIKey))
	})
	return errors.Wrap(err, "saving preferences")
}

// Clear removes both fields.
func (s *BoltStore) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Delete(keyProvider); err != nil {
			return err
		}
		return b.Delete(keyAPIKey)
	})
	return errors.Wrap(err, "clearing preferences")
}

var _ Store = (*BoltStore)(nil)
