package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected Default(), got %+v", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latc.yaml")
	if err := os.WriteFile(path, []byte("runtime_bc: custom/runtime.bc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RuntimeBC != "custom/runtime.bc" {
		t.Fatalf("RuntimeBC = %q, want custom/runtime.bc", cfg.RuntimeBC)
	}
	if cfg.LLVMAsPath != Default().LLVMAsPath {
		t.Fatalf("LLVMAsPath should keep its default, got %q", cfg.LLVMAsPath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latc.yaml")
	if err := os.WriteFile(path, []byte("out_dir: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}
