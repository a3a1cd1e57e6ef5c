package watch

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/savegame"
	"github.com/ssargent/ftlsave/pkg/savegame/savegametest"
	"github.com/ssargent/ftlsave/pkg/storage"
)

const waitTimeout = 5 * time.Second

func startWatcher(t *testing.T, withBackups bool) (*Watcher, string, *storage.BackupStore) {
	t.Helper()
	dir := t.TempDir()

	var store *storage.BackupStore
	var backups savefile.BackupStore
	if withBackups {
		var err error
		store, err = storage.NewBackupStore(filepath.Join(t.TempDir(), "backups"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		backups = store
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	saves := savefile.NewService(savegametest.Catalog(), backups, logger)
	w := New(dir, saves, 20*time.Millisecond, logger)
	require.NoError(t, w.Start())
	return w, dir, store
}

func next(t *testing.T, w *Watcher) Result {
	t.Helper()
	select {
	case r, ok := <-w.Results():
		require.True(t, ok, "results closed")
		return r
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for result")
	}
	return Result{}
}

func TestWatcherReportsSave(t *testing.T) {
	w, dir, store := startWatcher(t, true)
	defer w.Stop()

	path := filepath.Join(dir, "continue.sav")
	require.NoError(t, os.WriteFile(path, savegametest.Bytes(savegame.Format11), 0644))

	r := next(t, w)
	require.NoError(t, r.Err)
	assert.Equal(t, path, r.Path)
	require.NotNil(t, r.Summary)
	assert.Equal(t, 11, r.Summary.Format)
	assert.NotEqual(t, ksuid.Nil, r.Backup)

	data, err := store.Read(r.Backup)
	require.NoError(t, err)
	assert.Equal(t, savegametest.Bytes(savegame.Format11), data)
}

func TestWatcherReportsDecodeFailure(t *testing.T) {
	w, dir, _ := startWatcher(t, false)
	defer w.Stop()

	path := filepath.Join(dir, "broken.sav")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0644))

	r := next(t, w)
	assert.Equal(t, path, r.Path)
	assert.Error(t, r.Err)
	assert.Nil(t, r.Summary)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	w, dir, _ := startWatcher(t, false)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	path := filepath.Join(dir, "continue.sav")
	require.NoError(t, os.WriteFile(path, savegametest.Bytes(savegame.FormatOriginal), 0644))

	r := next(t, w)
	assert.Equal(t, path, r.Path)
	require.NoError(t, r.Err)
	assert.Equal(t, ksuid.Nil, r.Backup)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	saves := savefile.NewService(savegametest.Catalog(), nil, logger)
	w := New(dir, saves, 200*time.Millisecond, logger)
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, "continue.sav")
	data := savegametest.Bytes(savegame.Format9)
	f, err := os.Create(path)
	require.NoError(t, err)
	// write in pieces; only the completed file should be reported
	for _, chunk := range [][]byte{data[:8], data[8:16], data[16:]} {
		_, err := io.Copy(f, bytes.NewReader(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())

	r := next(t, w)
	require.NoError(t, r.Err)

	select {
	case extra := <-w.Results():
		t.Fatalf("unexpected second result %+v", extra)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestStopClosesResults(t *testing.T) {
	w, _, _ := startWatcher(t, false)
	require.NoError(t, w.Stop())

	_, ok := <-w.Results()
	assert.False(t, ok)
}

func TestStartMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), nil, time.Millisecond, nil)
	assert.Error(t, w.Start())
}
