package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file.
const FileName = ".localetree.yaml"

// Load returns Default() overlaid with rootDir/.localetree.yaml, validated
// and with relative roots resolved against rootDir. A missing file is not an
// error.
func Load(rootDir string) (Config, error) {
	cfg := Default()

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}

	path := filepath.Join(absRoot, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeInto(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ResolvePaths(absRoot)
	return cfg, nil
}

// decodeInto overlays the YAML document onto cfg. Keys that Config does not
// define are rejected so typos surface instead of silently using defaults.
func decodeInto(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Write stores cfg as rootDir/.localetree.yaml.
func Write(rootDir string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(rootDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
