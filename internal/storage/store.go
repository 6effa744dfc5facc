package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/cyclelab/internal/thermo"
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
	ID        string             `json:"id"`
	Family    string             `json:"family"`
	Branch    string             `json:"branch"`
	Timestamp time.Time          `json:"timestamp"`
	Inputs    map[string]float64 `json:"inputs"`
}

// Save records one solve under a fresh run directory: metadata.json
// with the family, branch, and sparse inputs, results.csv with the
// dense quantity table.
func (s *Store) Save(family, branch string, in thermo.Inputs, res *thermo.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", family, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Family:    family,
		Branch:    branch,
		Timestamp: time.Now(),
		Inputs:    in.KnownMap(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := WriteCSV(filepath.Join(runDir, "results.csv"), res); err != nil {
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResults reads a run's results.csv back into a Result, keeping
// the stored row order.
func (s *Store) LoadResults(runID string) (*thermo.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := thermo.NewResult()
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		val, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		res.Set(record[0], val)
	}
	return res, nil
}

// WriteCSV writes one quantity per row: name, value, unit.
func WriteCSV(path string, res *thermo.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"quantity", "value", "unit"}); err != nil {
		return err
	}
	for _, name := range res.Names() {
		val, _ := res.Get(name)
		row := []string{name, strconv.FormatFloat(val, 'f', 6, 64), thermo.Unit(name)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
