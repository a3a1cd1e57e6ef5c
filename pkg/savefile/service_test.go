package savefile

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/ftlsave/pkg/savegame"
	"github.com/ssargent/ftlsave/pkg/savegame/savegametest"
	"github.com/ssargent/ftlsave/pkg/storage"
)

func newTestService(t *testing.T) (*Service, *storage.BackupStore, *bytes.Buffer) {
	t.Helper()
	store, err := storage.NewBackupStore(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewService(savegametest.Catalog(), store, logger), store, &logs
}

func writeSave(t *testing.T, f savegame.Format, extra ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "continue.sav")
	data := append(savegametest.Bytes(f), extra...)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoad(t *testing.T) {
	svc, _, logs := newTestService(t)
	path := writeSave(t, savegame.Format11)

	state, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, savegametest.State(savegame.Format11), state)
	assert.Contains(t, logs.String(), "save loaded")
	assert.Contains(t, logs.String(), "format=11")
}

func TestLoadErrors(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Load(filepath.Join(t.TempDir(), "missing.sav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.sav")
	require.NoError(t, os.WriteFile(path, []byte{3, 0, 0, 0}, 0644))
	_, err = svc.Load(path)
	assert.ErrorIs(t, err, savegame.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), path)
}

func TestSaveBacksUpPrevious(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := writeSave(t, savegame.Format9)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	state, err := svc.Load(path)
	require.NoError(t, err)
	_, err = SetField(state, "scrap", 999)
	require.NoError(t, err)
	require.NoError(t, svc.Save(path, state))

	reloaded, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 999, reloaded.PlayerShip.ScrapAmount)

	backups, err := svc.Backups(path)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, BackupName(path), backups[0].Name)
	assert.Equal(t, len(original), backups[0].Size)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveNewFileTakesNoBackup(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := filepath.Join(t.TempDir(), "new.sav")

	require.NoError(t, svc.Save(path, savegametest.State(savegame.FormatOriginal)))

	backups, err := svc.Backups(path)
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestSaveEncodeFailureLeavesFile(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := writeSave(t, savegame.Format11)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	state := savegametest.State(savegame.Format11)
	state.Encounter = nil
	err = svc.Save(path, state)
	assert.ErrorIs(t, err, savegame.ErrMissingRecord)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRestore(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := writeSave(t, savegame.Format7)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	id, err := svc.Snapshot(path)
	require.NoError(t, err)

	state, err := svc.Load(path)
	require.NoError(t, err)
	_, err = SetField(state, "fuel", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Save(path, state))

	require.NoError(t, svc.Restore(path, id))
	restored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	// snapshot, save, restore: three backups
	backups, err := svc.Backups(path)
	require.NoError(t, err)
	assert.Len(t, backups, 3)
}

func TestRestoreRejectsUndecodableBackup(t *testing.T) {
	svc, store, _ := newTestService(t)
	path := writeSave(t, savegame.Format11)

	id, err := store.Create(BackupName(path), []byte{1, 2, 3})
	require.NoError(t, err)

	err = svc.Restore(path, id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not decode")

	err = svc.Restore(path, ksuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWithoutBackupStore(t *testing.T) {
	svc := NewService(savegametest.Catalog(), nil, nil)
	path := writeSave(t, savegame.FormatOriginal)

	state, err := svc.Load(path)
	require.NoError(t, err)
	require.NoError(t, svc.Save(path, state))

	_, err = svc.Backups(path)
	assert.ErrorIs(t, err, ErrNoBackupStore)
	_, err = svc.Snapshot(path)
	assert.ErrorIs(t, err, ErrNoBackupStore)
	assert.ErrorIs(t, svc.Restore(path, ksuid.New()), ErrNoBackupStore)
}

func TestSnapshotKeepsBackupLimit(t *testing.T) {
	store, err := storage.NewBackupStore(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	svc := NewService(savegametest.Catalog(), store, logger, WithBackupLimit(2))
	path := writeSave(t, savegame.Format9)

	for i := 0; i < 4; i++ {
		_, err := svc.Snapshot(path)
		require.NoError(t, err)
	}

	backups, err := svc.Backups(path)
	require.NoError(t, err)
	assert.Len(t, backups, 2)
	assert.Contains(t, logs.String(), "backups pruned")
}

func TestPrune(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := writeSave(t, savegame.Format7)

	for i := 0; i < 3; i++ {
		_, err := svc.Snapshot(path)
		require.NoError(t, err)
	}

	removed, err := svc.Prune(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	backups, err := svc.Backups(path)
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	_, err = NewService(savegametest.Catalog(), nil, nil).Prune(path, 1)
	assert.ErrorIs(t, err, ErrNoBackupStore)
}
