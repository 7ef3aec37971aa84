// Package storage persists sweep runs under a base directory, one
// directory per run with metadata.json and points.csv.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/raheelusc/rocket-relations/internal/sweep"
)

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
	ID        string       `json:"id"`
	Quantity  string       `json:"quantity"`
	Timestamp time.Time    `json:"timestamp"`
	From      float64      `json:"from"`
	To        float64      `json:"to"`
	Points    int          `json:"points"`
	Inputs    sweep.Inputs `json:"inputs"`
}

// PointRow is one grid sample as written to points.csv.
type PointRow struct {
	Value float64 `csv:"value"`
	Cstar float64 `csv:"cstar"`
	CF    float64 `csv:"cf"`
}

func (s *Store) Save(series *sweep.Series, base sweep.Inputs) (string, error) {
	if len(series.Grid) == 0 {
		return "", fmt.Errorf("refusing to save empty series")
	}

	runID := fmt.Sprintf("%s_%d", series.Quantity, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Quantity:  series.Quantity,
		Timestamp: time.Now(),
		From:      series.Grid[0],
		To:        series.Grid[len(series.Grid)-1],
		Points:    len(series.Grid),
		Inputs:    base,
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

	rows := make([]PointRow, len(series.Grid))
	for i, v := range series.Grid {
		rows[i] = PointRow{Value: v, Cstar: series.Cstar[i], CF: series.CF[i]}
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.MarshalFile(&rows, csvFile); err != nil {
		return "", err
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]PointRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []PointRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
