package config

import (
	"testing"

	"github.com/penwern/curate-museum-crosswalk/pkg/edm"
	"github.com/penwern/curate-museum-crosswalk/pkg/linkedart"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	Init()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.Output.Format != "jsonl" {
		t.Errorf("Expected %q, got %q", "jsonl", cfg.Output.Format)
	}
	if cfg.Server.Addr != ":6906" {
		t.Errorf("Expected %q, got %q", ":6906", cfg.Server.Addr)
	}
	if cfg.Server.MaxBodyBytes != 32<<20 {
		t.Errorf("Expected %d, got %d", 32<<20, cfg.Server.MaxBodyBytes)
	}
	if cfg.EDM.SourceURLTemplate != edm.DefaultSourceURLTemplate {
		t.Errorf("Expected %q, got %q", edm.DefaultSourceURLTemplate, cfg.EDM.SourceURLTemplate)
	}
	if cfg.LinkedArtProfile() != linkedart.DefaultProfile() {
		t.Errorf("Expected default profile, got %+v", cfg.LinkedArtProfile())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CROSSWALK_WORKERS", "8")
	t.Setenv("CROSSWALK_OUTPUT_FORMAT", "parquet")
	t.Setenv("CROSSWALK_LINKED_ART_OBJECT_PREFIX", "https://example.org/object/")
	Init()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.Output.Format != "parquet" {
		t.Errorf("Expected %q, got %q", "parquet", cfg.Output.Format)
	}
	if cfg.LinkedArt.ObjectPrefix != "https://example.org/object/" {
		t.Errorf("Expected %q, got %q", "https://example.org/object/", cfg.LinkedArt.ObjectPrefix)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"workers too high", "CROSSWALK_WORKERS", "100"},
		{"unknown output format", "CROSSWALK_OUTPUT_FORMAT", "csv"},
		{"unknown log level", "CROSSWALK_LOG_LEVEL", "verbose"},
		{"template without placeholder", "CROSSWALK_EDM_SOURCE_URL_TEMPLATE", "https://example.org/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)
			Init()
			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
