package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minios-linux/localetree/provider"
)

func writeFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.SourceRoot != filepath.Join(dir, "public", "locales", "en") {
			t.Fatalf("SourceRoot = %q", cfg.SourceRoot)
		}
		if cfg.TargetRoot != filepath.Join(dir, "public", "locales", "it") {
			t.Fatalf("TargetRoot = %q", cfg.TargetRoot)
		}
		if cfg.Provider != provider.ProviderOllama || cfg.SourceLang != "en" || cfg.TargetLang != "it" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.Temperature != DefaultTemperature {
			t.Fatalf("Temperature = %v, want %v", cfg.Temperature, DefaultTemperature)
		}
	})

	t.Run("file overrides and keeps unset defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "target_root: locales/de\n"+
			"target_lang: de\n"+
			"provider: groq\n"+
			"timeout: 45s\n"+
			"strict: true\n")

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.TargetRoot != filepath.Join(dir, "locales", "de") {
			t.Fatalf("TargetRoot = %q", cfg.TargetRoot)
		}
		if cfg.SourceRoot != filepath.Join(dir, "public", "locales", "en") {
			t.Fatalf("SourceRoot default lost: %q", cfg.SourceRoot)
		}
		if cfg.TargetLang != "de" || cfg.Provider != "groq" || !cfg.Strict {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		if cfg.Timeout != 45*time.Second {
			t.Fatalf("Timeout = %v, want 45s", cfg.Timeout)
		}
	})

	t.Run("absolute roots are kept", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(t.TempDir(), "src")
		writeFile(t, dir, "source_root: "+abs+"\n")
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.SourceRoot != abs {
			t.Fatalf("SourceRoot = %q, want %q", cfg.SourceRoot, abs)
		}
	})

	t.Run("empty file is accepted", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "")
		if _, err := Load(dir); err != nil {
			t.Fatalf("Load error: %v", err)
		}
	})
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "source_dir: x\n", "field source_dir not found"},
		{"same roots", "source_root: a\ntarget_root: a\n", "same directory"},
		{"temperature range", "temperature: 3\n", "out of range"},
		{"bad duration", "timeout: soon\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.content)
			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.TargetLang = "fr"
	cfg.TargetRoot = "public/locales/fr"
	cfg.Timeout = 2 * time.Minute
	if err := Write(dir, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TargetLang != "fr" || got.Timeout != 2*time.Minute {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestProviderSettings(t *testing.T) {
	cfg := Default()
	p := cfg.ProviderSettings()
	if p.BaseURL != "http://127.0.0.1:11434/v1" || p.Model != "llama3.2:3b" {
		t.Fatalf("ollama defaults not applied: %+v", p)
	}

	cfg.Provider = "my-gateway"
	cfg.Endpoint = "http://gw.local/v1"
	cfg.Model = "qwen2.5"
	cfg.Timeout = 10 * time.Second
	p = cfg.ProviderSettings()
	if p.ID != provider.ProviderCustomOpenAI || p.Name != "my-gateway" {
		t.Fatalf("unknown provider not treated as custom: %+v", p)
	}
	if p.BaseURL != cfg.Endpoint || p.Model != "qwen2.5" || p.Timeout != 10*time.Second {
		t.Fatalf("overrides not applied: %+v", p)
	}
}

func TestLoadKeepsZeroTemperature(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "temperature: 0\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Temperature != 0 {
		t.Fatalf("Temperature = %v, want 0", cfg.Temperature)
	}

	// Write keeps an explicit zero so a reload does not fall back to the default.
	if err := Write(dir, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	again, err := Load(dir)
	if err != nil {
		t.Fatalf("Load after Write: %v", err)
	}
	if again.Temperature != 0 {
		t.Fatalf("Temperature after round trip = %v, want 0", again.Temperature)
	}
}
