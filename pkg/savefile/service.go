// Package savefile loads, verifies and rewrites save files on disk, keeping a
// backup of every file it replaces.
package savefile

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/savegame"
	"github.com/ssargent/ftlsave/pkg/storage"
)

// ErrNoBackupStore is returned by operations that need a backup store when
// the service was created without one
var ErrNoBackupStore = errors.New("no backup store configured")

// BackupStore is the subset of storage.BackupStore the service uses
type BackupStore interface {
	Create(name string, data []byte) (ksuid.KSUID, error)
	Read(id ksuid.KSUID) ([]byte, error)
	List(name string) ([]storage.Backup, error)
	Prune(name string, keep int) (int, error)
}

// Service reads and writes save files against a blueprint catalog
type Service struct {
	lookup  blueprint.Lookup
	backups BackupStore
	logger  *slog.Logger
	keep    int
}

// Option configures a Service
type Option func(*Service)

// WithBackupLimit keeps at most keep snapshots per save file, dropping the
// oldest after each new one. Zero keeps everything.
func WithBackupLimit(keep int) Option {
	return func(s *Service) {
		s.keep = keep
	}
}

// NewService creates a service. backups may be nil, in which case Save
// replaces files without taking a snapshot.
func NewService(lookup blueprint.Lookup, backups BackupStore, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{lookup: lookup, backups: backups, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BackupName is the key snapshots of path are stored under
func BackupName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Load decodes the save file at path
func (s *Service) Load(path string) (*savegame.SavedGameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	state, err := s.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("save loaded",
		"path", path,
		"format", int(state.Format),
		"bytes", len(data),
	)
	return state, nil
}

// DecodeBytes decodes an in-memory save
func (s *Service) DecodeBytes(data []byte) (*savegame.SavedGameState, error) {
	return savegame.Decode(bytes.NewReader(data), s.lookup)
}

// EncodeBytes encodes a save to memory
func (s *Service) EncodeBytes(state *savegame.SavedGameState) ([]byte, error) {
	var buf bytes.Buffer
	if err := savegame.Encode(&buf, state, s.lookup, savegame.WithLogger(s.logger)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes state and replaces the file at path. The previous contents,
// if any, are stored as a backup first.
func (s *Service) Save(path string, state *savegame.SavedGameState) error {
	data, err := s.EncodeBytes(state)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := s.snapshot(path); err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	s.logger.Info("save written",
		"path", path,
		"format", int(state.Format),
		"bytes", len(data),
	)
	return nil
}

// Snapshot stores the current contents of path in the backup store
func (s *Service) Snapshot(path string) (ksuid.KSUID, error) {
	if s.backups == nil {
		return ksuid.Nil, ErrNoBackupStore
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to read save file: %w", err)
	}
	id, err := s.backups.Create(BackupName(path), data)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to back up %s: %w", path, err)
	}
	s.logger.Info("backup created", "path", path, "id", id.String(), "bytes", len(data))
	if s.keep > 0 {
		if _, err := s.Prune(path, s.keep); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Prune deletes all but the newest keep snapshots of path and returns how
// many were removed
func (s *Service) Prune(path string, keep int) (int, error) {
	if s.backups == nil {
		return 0, ErrNoBackupStore
	}
	removed, err := s.backups.Prune(BackupName(path), keep)
	if err != nil {
		return removed, fmt.Errorf("failed to prune backups of %s: %w", path, err)
	}
	if removed > 0 {
		s.logger.Info("backups pruned", "path", path, "removed", removed, "kept", keep)
	}
	return removed, nil
}

func (s *Service) snapshot(path string) error {
	if s.backups == nil {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	_, err := s.Snapshot(path)
	return err
}

// Backups lists the snapshots taken of path, oldest first
func (s *Service) Backups(path string) ([]storage.Backup, error) {
	if s.backups == nil {
		return nil, ErrNoBackupStore
	}
	return s.backups.List(BackupName(path))
}

// Restore replaces path with the snapshot id. The snapshot must decode; the
// file being replaced is backed up first.
func (s *Service) Restore(path string, id ksuid.KSUID) error {
	if s.backups == nil {
		return ErrNoBackupStore
	}
	data, err := s.backups.Read(id)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	if _, err := s.DecodeBytes(data); err != nil {
		return fmt.Errorf("backup %s does not decode: %w", id, err)
	}
	if err := s.snapshot(path); err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	s.logger.Info("backup restored", "path", path, "id", id.String(), "bytes", len(data))
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}
