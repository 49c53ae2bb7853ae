package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Panels.Format != Default().Panels.Format {
		t.Errorf("expected defaults, got format %q", cfg.Panels.Format)
	}
}

func TestLoadFrom_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"panels": {"showHidden": true}, "tabs": {"maxTitleLength": 16}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Panels.ShowHidden {
		t.Error("expected showHidden from file")
	}
	if cfg.Tabs.MaxTitleLength != 16 {
		t.Errorf("expected maxTitleLength 16, got %d", cfg.Tabs.MaxTitleLength)
	}
	if cfg.Panels.ScrollPolicy != "minimal" {
		t.Errorf("expected default scroll policy, got %q", cfg.Panels.ScrollPolicy)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate_NormalizesEnums(t *testing.T) {
	cfg := Default()
	cfg.Panels.ScrollPolicy = "bogus"
	cfg.Panels.QuickSearchCase = "bogus"
	cfg.Tabs.InsertDirection = "bogus"
	cfg.Tabs.MaxTitleLength = -1
	cfg.Panels.Format = ""

	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Panels.ScrollPolicy != "minimal" {
		t.Errorf("scroll policy not normalized: %q", cfg.Panels.ScrollPolicy)
	}
	if cfg.Panels.QuickSearchCase != "insensitive" {
		t.Errorf("search case not normalized: %q", cfg.Panels.QuickSearchCase)
	}
	if cfg.Tabs.InsertDirection != "next" {
		t.Errorf("insert direction not normalized: %q", cfg.Tabs.InsertDirection)
	}
	if cfg.Tabs.MaxTitleLength != 32 {
		t.Errorf("title length not normalized: %d", cfg.Tabs.MaxTitleLength)
	}
	if cfg.Panels.Format == "" {
		t.Error("empty format not normalized")
	}
}
