package publish

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks what has been published.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Retention   Retention   `json:"retention"`
	Views       []string    `json:"views"`
	Archive     ArchiveMeta `json:"archive"`
}

type Retention struct {
	ArchiveDays int `json:"archiveDays"`
}

type ArchiveMeta struct {
	Dates         []string  `json:"dates"`
	LastPublished time.Time `json:"lastPublished"`
}

func defaultManifest(retentionDays int, now time.Time) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: now,
		Retention: Retention{
			ArchiveDays: retentionDays,
		},
		Views: []string{},
		Archive: ArchiveMeta{
			Dates: []string{},
		},
	}
}

// ReadManifest loads the manifest at path.
func ReadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = writeAtomic(ManifestPath(basePath), data)
	return err
}
