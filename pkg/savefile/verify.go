package savefile

import (
	"fmt"
	"os"
)

// Report is the result of a decode/encode round trip
type Report struct {
	Path         string `json:"path,omitempty"`
	Format       int    `json:"format"`
	Size         int    `json:"size"`
	EncodedSize  int    `json:"encoded_size"`
	MysteryBytes int    `json:"mystery_bytes"`
	Match        bool   `json:"match"`
	// FirstDiff is the offset of the first differing byte, or -1
	FirstDiff int64 `json:"first_diff"`
}

// Verify decodes the file at path, re-encodes it and compares the result
// with the original. Trailing mystery bytes are not compared since the
// encoder does not write them.
func (s *Service) Verify(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	report, err := s.VerifyBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Path = path
	level := s.logger.Info
	if !report.Match {
		level = s.logger.Warn
	}
	level("save verified",
		"path", path,
		"format", report.Format,
		"bytes", report.Size,
		"match", report.Match,
		"offset", report.FirstDiff,
	)
	return report, nil
}

// VerifyBytes runs the round trip on an in-memory save
func (s *Service) VerifyBytes(data []byte) (*Report, error) {
	state, err := s.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	encoded, err := s.EncodeBytes(state)
	if err != nil {
		return nil, err
	}

	mystery := state.MysteryByteCount()
	original := data[:len(data)-mystery]
	diff := firstDiff(original, encoded)
	return &Report{
		Format:       int(state.Format),
		Size:         len(data),
		EncodedSize:  len(encoded),
		MysteryBytes: mystery,
		Match:        diff < 0,
		FirstDiff:    diff,
	}, nil
}

// firstDiff returns the first offset at which a and b differ, or -1 when
// they are identical
func firstDiff(a, b []byte) int64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int64(i)
		}
	}
	if len(a) != len(b) {
		return int64(n)
	}
	return -1
}
