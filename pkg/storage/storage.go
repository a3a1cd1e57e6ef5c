package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when no backup exists for an id
var ErrNotFound = errors.New("backup not found")

// Key prefixes. Data and owner records are keyed by the raw ksuid; the name
// index appends the ksuid to the name so a prefix scan yields creation order.
const (
	dataPrefix  = "d:"
	ownerPrefix = "o:"
	namePrefix  = "n:"
)

// Backup describes one stored snapshot
type Backup struct {
	ID      ksuid.KSUID
	Name    string
	Created time.Time
	Size    int
}

// BackupStore keeps snapshots of save files in a pebble database
type BackupStore struct {
	db *pebble.DB
}

// NewBackupStore opens or creates the store at path
func NewBackupStore(path string) (*BackupStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup store: %w", err)
	}
	return &BackupStore{db: db}, nil
}

func dataKey(id ksuid.KSUID) []byte {
	return append([]byte(dataPrefix), id.Bytes()...)
}

func ownerKey(id ksuid.KSUID) []byte {
	return append([]byte(ownerPrefix), id.Bytes()...)
}

func nameIndexPrefix(name string) []byte {
	key := make([]byte, 0, len(namePrefix)+len(name)+1)
	key = append(key, namePrefix...)
	key = append(key, name...)
	return append(key, 0)
}

func nameKey(name string, id ksuid.KSUID) []byte {
	return append(nameIndexPrefix(name), id.Bytes()...)
}

// prefixEnd returns the smallest key greater than every key with the prefix
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

// Create stores a snapshot of data under name and returns its id
func (s *BackupStore) Create(name string, data []byte) (ksuid.KSUID, error) {
	if name == "" {
		return ksuid.Nil, errors.New("backup name must not be empty")
	}
	id := ksuid.New()

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(data)))

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(dataKey(id), data, nil); err != nil {
		return ksuid.Nil, err
	}
	if err := batch.Set(ownerKey(id), []byte(name), nil); err != nil {
		return ksuid.Nil, err
	}
	if err := batch.Set(nameKey(name, id), size[:], nil); err != nil {
		return ksuid.Nil, err
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to commit backup: %w", err)
	}
	return id, nil
}

// Read returns a copy of the snapshot stored under id
func (s *BackupStore) Read(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(dataKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Name returns the name a snapshot was stored under
func (s *BackupStore) Name(id ksuid.KSUID) (string, error) {
	value, closer, err := s.db.Get(ownerKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	defer closer.Close()
	return string(value), nil
}

// List returns the snapshots stored under name, oldest first
func (s *BackupStore) List(name string) ([]Backup, error) {
	prefix := nameIndexPrefix(name)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var backups []Backup
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(prefix):])
		if err != nil {
			return nil, fmt.Errorf("corrupt index key for %q: %w", name, err)
		}
		value := iter.Value()
		if len(value) != 8 {
			return nil, fmt.Errorf("corrupt index value for %s", id)
		}
		backups = append(backups, Backup{
			ID:      id,
			Name:    name,
			Created: id.Time(),
			Size:    int(binary.BigEndian.Uint64(value)),
		})
	}
	return backups, iter.Error()
}

// Delete removes a snapshot and its index entries
func (s *BackupStore) Delete(id ksuid.KSUID) error {
	name, err := s.Name(id)
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete(dataKey(id), nil); err != nil {
		return err
	}
	if err := batch.Delete(ownerKey(id), nil); err != nil {
		return err
	}
	if err := batch.Delete(nameKey(name, id), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// Prune deletes all but the newest keep snapshots under name and returns
// how many were removed
func (s *BackupStore) Prune(name string, keep int) (int, error) {
	backups, err := s.List(name)
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	removed := 0
	for i := 0; i < len(backups)-keep; i++ {
		if err := s.Delete(backups[i].ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Close closes the underlying database
func (s *BackupStore) Close() error {
	return s.db.Close()
}
