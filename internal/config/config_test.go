package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.History.DBPath == "" {
		t.Error("history db path must have a default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	content := `
log_level: debug
parallelism: 4
history:
  enabled: false
  db_path: custom.db
folders:
  - name: spells
    path: prefabs/spells
    suffix: .spell.yaml
  - name: perks
    path: prefabs/perks
    suffix: .perk.yaml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", cfg.Parallelism)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled")
	}
	if len(cfg.Folders) != 2 {
		t.Fatalf("Folders = %d, want 2", len(cfg.Folders))
	}
	if cfg.Folders[0].Suffix != ".spell.yaml" {
		t.Errorf("Folders[0].Suffix = %q, want .spell.yaml", cfg.Folders[0].Suffix)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	if err := os.WriteFile(path, []byte("folders: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "missing path",
			cfg: Config{Folders: []FolderDef{
				{Name: "spells", Suffix: ".spell.yaml"},
			}},
			wantErr: "path is required",
		},
		{
			name: "missing suffix",
			cfg: Config{Folders: []FolderDef{
				{Name: "spells", Path: "prefabs/spells"},
			}},
			wantErr: "suffix is required",
		},
		{
			name: "suffix without dot",
			cfg: Config{Folders: []FolderDef{
				{Name: "spells", Path: "prefabs/spells", Suffix: "spell.yaml"},
			}},
			wantErr: "must start with a dot",
		},
		{
			name: "duplicate folder name",
			cfg: Config{Folders: []FolderDef{
				{Name: "spells", Path: "a", Suffix: ".s.yaml"},
				{Name: "spells", Path: "b", Suffix: ".s.yaml"},
			}},
			wantErr: "duplicate folder name",
		},
		{
			name:    "negative parallelism",
			cfg:     Config{Parallelism: -1},
			wantErr: "parallelism",
		},
		{
			name: "valid",
			cfg: Config{Folders: []FolderDef{
				{Name: "spells", Path: "prefabs/spells", Suffix: ".spell.yaml"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
