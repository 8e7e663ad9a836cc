package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/cosmic/internal/cosmo"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	H0        float64   `json:"h0"`
	OmegaM    float64   `json:"omega_m"`
	OmegaL    float64   `json:"omega_l"`
	OmegaK    float64   `json:"omega_k"`
	Q0        float64   `json:"q0"`
	AgeGyr    float64   `json:"age_gyr"`
	Age       float64   `json:"age_s"`
	Count     int       `json:"count"`
	Source    string    `json:"source,omitempty"`
}

func (m RunMetadata) Params() cosmo.Params {
	return cosmo.Params{H0: m.H0, OmegaM: m.OmegaM, OmegaL: m.OmegaL}
}

var columns = []string{"z", "d_a", "d_l", "d_c", "d_m", "v_c", "lookback_s", "scale", "rho_crit"}

func newRunID(now time.Time) string {
	return fmt.Sprintf("run_%d_%s", now.Unix(), uuid.NewString()[:8])
}

// Save writes one batch run: metadata.json with the cosmology and
// distances.csv with one row per snapshot.
func (s *Store) Save(p cosmo.Params, snaps []cosmo.Snapshot, source string) (string, error) {
	now := time.Now()
	runID := newRunID(now)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	// the engine that produced snaps may not use the default quadrature
	var base cosmo.Snapshot
	if len(snaps) > 0 {
		base = snaps[0]
	} else {
		base = cosmo.FromParams(p).Snapshot()
	}
	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		H0:        p.H0,
		OmegaM:    p.OmegaM,
		OmegaL:    p.OmegaL,
		OmegaK:    base.OmegaK,
		Q0:        base.Q0,
		AgeGyr:    base.AgeGyr(),
		Age:       base.Age,
		Count:     len(snaps),
		Source:    source,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "distances.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, sn := range snaps {
		row := []string{
			formatFloat(sn.Z),
			formatFloat(sn.DA),
			formatFloat(sn.DL),
			formatFloat(sn.DC),
			formatFloat(sn.DM),
			formatFloat(sn.VC),
			formatFloat(sn.Lookback),
			formatFloat(sn.Scale),
			formatFloat(sn.RhoCrit),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}

	return &meta, nil
}

// LoadSnapshots reads back the distances of a run. Parameter fields and the
// age of each snapshot are filled from the run metadata.
func (s *Store) LoadSnapshots(runID string) ([]cosmo.Snapshot, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "distances.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(columns)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []cosmo.Snapshot{}, nil
	}

	base := cosmo.Snapshot{
		H0:     meta.H0,
		OmegaM: meta.OmegaM,
		OmegaL: meta.OmegaL,
		OmegaK: meta.OmegaK,
		Q0:     meta.Q0,
		Age:    meta.Age,
	}
	snaps := make([]cosmo.Snapshot, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("distances.csv row %d: %w", i+2, err)
			}
			vals[j] = v
		}

		sn := base
		sn.Z, sn.DA, sn.DL, sn.DC, sn.DM = vals[0], vals[1], vals[2], vals[3], vals[4]
		sn.VC, sn.Lookback, sn.Scale, sn.RhoCrit = vals[5], vals[6], vals[7], vals[8]
		snaps = append(snaps, sn)
	}

	return snaps, nil
}
