package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/savegame"
)

// Server holds the API server state
type Server struct {
	saves   SaveService
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(saves SaveService, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		saves:   saves,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// readSave reads the raw save from the request body. It writes the error
// response itself and returns nil on failure.
func (s *Server) readSave(w http.ResponseWriter, r *http.Request) []byte {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Save file exceeds %d bytes", s.config.MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return nil
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil
	}
	if len(body) == 0 {
		sendError(w, "Request body is empty", http.StatusBadRequest)
		return nil
	}
	return body
}

// sendCodecError maps a decode or encode failure to a 422 response
func (s *Server) sendCodecError(w http.ResponseWriter, operation string, size int, err error) {
	s.logger.Warn("save "+operation+" failed", "bytes", size, "error", err)

	var decodeErr *savegame.DecodeError
	if errors.As(err, &decodeErr) {
		sendErrorData(w, err.Error(), http.StatusUnprocessableEntity, DecodeFailure{
			Path:   decodeErr.Path,
			Field:  decodeErr.Field,
			Offset: decodeErr.Offset,
			Value:  decodeErr.Value,
		})
		return
	}
	sendError(w, err.Error(), http.StatusUnprocessableEntity)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body := s.readSave(w, r)
	if body == nil {
		return
	}

	start := time.Now()
	state, err := s.saves.DecodeBytes(body)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", 0, false, len(body), time.Since(start))
		s.sendCodecError(w, "decode", len(body), err)
		return
	}
	s.metrics.RecordCodecOperation("decode", int(state.Format), true, len(body), time.Since(start))

	s.logger.Debug("save decoded", "format", int(state.Format), "bytes", len(body))
	sendSuccess(w, savegame.Summarize(state))
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	body := s.readSave(w, r)
	if body == nil {
		return
	}

	start := time.Now()
	report, err := s.saves.VerifyBytes(body)
	if err != nil {
		s.metrics.RecordCodecOperation("verify", 0, false, len(body), time.Since(start))
		s.sendCodecError(w, "verify", len(body), err)
		return
	}
	s.metrics.RecordCodecOperation("verify", report.Format, true, len(body), time.Since(start))

	if !report.Match {
		s.logger.Warn("save round trip mismatch",
			"format", report.Format,
			"bytes", report.Size,
			"offset", report.FirstDiff,
		)
	}
	sendSuccess(w, report)
}

func (s *Server) handleListBackups(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		sendError(w, "Query parameter name is required", http.StatusBadRequest)
		return
	}

	backups, err := s.saves.Backups(name)
	if errors.Is(err, savefile.ErrNoBackupStore) {
		sendError(w, "Backups are not enabled", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		s.logger.Error("failed to list backups", "path", name, "error", err)
		sendError(w, "Failed to list backups", http.StatusInternalServerError)
		return
	}

	out := make([]BackupResponse, 0, len(backups))
	for _, b := range backups {
		out = append(out, BackupResponse{
			ID:      b.ID.String(),
			Name:    b.Name,
			Created: b.Created,
			Size:    b.Size,
		})
	}
	sendSuccess(w, out)
}
