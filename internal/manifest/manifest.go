// Package manifest exports the results of a load cycle to a YAML manifest
// file that downstream pipeline steps can consume. Writes are guarded by an
// exclusive file lock and performed atomically so concurrent pipeline runs
// never observe a partial manifest.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Asset is one discovered asset in a manifest.
type Asset struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Manifest describes the outcome of one load cycle over one folder.
type Manifest struct {
	Folder      string    `yaml:"folder"`
	Suffix      string    `yaml:"suffix"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Expected    int       `yaml:"expected"`
	Loaded      int       `yaml:"loaded"`
	Failed      []string  `yaml:"failed,omitempty"`
	Assets      []Asset   `yaml:"assets"`
}

// Write serializes m to path under an exclusive lock, using a temp file and
// atomic rename so readers never see a partial manifest. The lock file is
// path + ".lock".
func Write(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// Read loads a manifest from path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// atomicWrite writes data via a temp file in the target directory followed by
// a rename, so an interrupted write leaves any existing file unchanged.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
