package api

import (
	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/savegame"
	"github.com/ssargent/ftlsave/pkg/storage"
)

// SaveService is the subset of savefile.Service the handlers use
type SaveService interface {
	DecodeBytes(data []byte) (*savegame.SavedGameState, error)
	VerifyBytes(data []byte) (*savefile.Report, error)
	Backups(path string) ([]storage.Backup, error)
}
