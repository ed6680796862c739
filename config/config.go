// Package config holds the settings of a localetree run and loads them
// from an optional .localetree.yaml file in the project root.
//
// Model, Endpoint and Timeout are left empty by Default: an empty value
// means "use the provider's default" (see provider.DefaultProviders).
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/minios-linux/localetree/provider"
)

// Config is the resolved configuration of a run.
type Config struct {
	// SourceRoot is the directory holding the source-locale documents.
	SourceRoot string `yaml:"source_root,omitempty"`
	// TargetRoot is the directory the target-locale tree is written to.
	TargetRoot string `yaml:"target_root,omitempty"`

	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	// APIKey is accepted in the file for local gateways; prefer
	// "localetree auth login" or LOCALETREE_API_KEY for real keys.
	APIKey  string        `yaml:"api_key,omitempty"`
	Proxy   string        `yaml:"proxy,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`

	SourceLang  string  `yaml:"source_lang,omitempty"`
	TargetLang  string  `yaml:"target_lang,omitempty"`
	Temperature float64 `yaml:"temperature"`
	// Prompt overrides the system prompt. {{sourceLang}} and {{targetLang}}
	// are replaced with English language names.
	Prompt string `yaml:"prompt,omitempty"`

	// Strict rejects translations whose key structure differs from the source.
	Strict bool `yaml:"strict,omitempty"`
	// KeepGoing continues past failing files and reports them at the end.
	KeepGoing bool `yaml:"keep_going,omitempty"`
}

// Defaults for a fresh project.
const (
	DefaultSourceRoot  = "public/locales/en"
	DefaultTargetRoot  = "public/locales/it"
	DefaultSourceLang  = "en"
	DefaultTargetLang  = "it"
	DefaultTemperature = 0.5
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SourceRoot:  DefaultSourceRoot,
		TargetRoot:  DefaultTargetRoot,
		Provider:    provider.ProviderOllama,
		SourceLang:  DefaultSourceLang,
		TargetLang:  DefaultTargetLang,
		Temperature: DefaultTemperature,
	}
}

// Validate checks the fields that do not depend on the provider.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceRoot) == "" {
		return fmt.Errorf("source root is empty")
	}
	if strings.TrimSpace(c.TargetRoot) == "" {
		return fmt.Errorf("target root is empty")
	}
	if filepath.Clean(c.SourceRoot) == filepath.Clean(c.TargetRoot) {
		return fmt.Errorf("source and target roots are the same directory: %s", c.SourceRoot)
	}
	if c.SourceLang == "" || c.TargetLang == "" {
		return fmt.Errorf("source and target languages are required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ResolvePaths makes relative roots absolute against rootDir.
func (c *Config) ResolvePaths(rootDir string) {
	c.SourceRoot = resolve(rootDir, c.SourceRoot)
	c.TargetRoot = resolve(rootDir, c.TargetRoot)
}

func resolve(rootDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(rootDir, p)
}

// ProviderSettings overlays the non-empty connection fields of c onto the
// provider's defaults.
func (c *Config) ProviderSettings() provider.Provider {
	p, _ := provider.Lookup(c.Provider)
	if c.Model != "" {
		p.Model = c.Model
	}
	if c.Endpoint != "" {
		p.BaseURL = c.Endpoint
	}
	if c.APIKey != "" {
		p.APIKey = c.APIKey
	}
	if c.Proxy != "" {
		p.Proxy = c.Proxy
	}
	if c.Timeout > 0 {
		p.Timeout = c.Timeout
	}
	return p
}
