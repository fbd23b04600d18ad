package targetdesc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNoPathReturnsReference(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Reference() {
		t.Fatalf("expected Reference(), got %+v", d)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.json")
	if err := os.WriteFile(path, []byte(`{"pointer_bits": 32}`), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.PointerBits != 32 {
		t.Fatalf("PointerBits = %d, want 32", d.PointerBits)
	}
	if d.IntBits != Reference().IntBits {
		t.Fatalf("IntBits should keep its reference default, got %d", d.IntBits)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("an explicitly named but missing target file should error, unlike config.Load")
	}
}
