// Package config loads the optional latc.yaml project configuration
// file (SPEC_FULL.md §A) that supplies defaults the CLI's flags may
// override.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// File is the decoded shape of latc.yaml.
type File struct {
	OutDir       string `yaml:"out_dir"`
	RuntimeBC    string `yaml:"runtime_bc"`
	LLVMAsPath   string `yaml:"llvm_as"`
	LLVMLinkPath string `yaml:"llvm_link"`
}

// Default returns the built-in configuration used when no latc.yaml is
// present, the lowest rung of the flag > config file > default precedence
// chain.
func Default() File {
	return File{
		RuntimeBC:    "lib/runtime.bc",
		LLVMAsPath:   "llvm-as",
		LLVMLinkPath: "llvm-link",
	}
}

// Load reads and parses the latc.yaml file at path. A missing file is not
// an error: Load returns Default() unchanged, since the config file is
// optional.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		path = "latc.yaml"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
