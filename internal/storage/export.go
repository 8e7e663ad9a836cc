package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/cosmic/internal/cosmo"
)

type ExportData struct {
	Run       RunMetadata      `json:"run"`
	Snapshots []cosmo.Snapshot `json:"snapshots"`
}

// ExportJSON writes a stored run with its snapshots as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	snaps, err := s.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Snapshots: snaps})
}
