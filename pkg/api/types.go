package api

import "time"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DefaultMaxBodyBytes bounds uploaded save files
const DefaultMaxBodyBytes = 16 << 20

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind         string
	Port         int
	APIKey       string
	MaxBodyBytes int64
}

// BackupResponse describes one stored snapshot
type BackupResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Size    int       `json:"size"`
}

// DecodeFailure is returned as data alongside a decode error
type DecodeFailure struct {
	Path   string `json:"path"`
	Field  string `json:"field"`
	Offset int64  `json:"offset"`
	Value  int64  `json:"value"`
}
