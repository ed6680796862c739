// Package provider implements the chat-completion endpoints localetree
// uses as its translation oracle: any OpenAI-compatible API (Ollama, OpenAI,
// Groq, custom gateways) and the native Google AI (Gemini) API.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Provider IDs
// ---------------------------------------------------------------------------

const (
	ProviderOllama       = "ollama"
	ProviderOpenAI       = "openai"
	ProviderGroq         = "groq"
	ProviderGoogle       = "google"
	ProviderCustomOpenAI = "custom-openai"
)

// ---------------------------------------------------------------------------
// Oracle contract
// ---------------------------------------------------------------------------

// Request is a single chat turn: one system instruction, one user message.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float64
}

// Oracle sends a chat request and returns the model's textual reply.
type Oracle interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f OracleFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// ---------------------------------------------------------------------------
// Provider configuration
// ---------------------------------------------------------------------------

type apiFormat int

const (
	formatOpenAIChat   apiFormat = iota // OpenAI chat/completions
	formatGeminiNative                  // Google Gemini generateContent
)

// Provider holds the configuration for a chat endpoint.
type Provider struct {
	// ID is the provider identifier (ollama, openai, groq, google, custom-openai).
	ID string
	// Name is the display name.
	Name string
	// BaseURL is the API base URL.
	BaseURL string
	// APIKey is the authentication key (empty for local services).
	APIKey string
	// Model is the default model identifier.
	Model string
	// Proxy is an optional HTTP/HTTPS proxy URL.
	Proxy string
	// Timeout is the request timeout.
	Timeout time.Duration
	// RequiresKey marks hosted services that reject anonymous requests.
	RequiresKey bool

	format apiFormat
}

// DefaultProviders returns the pre-configured provider definitions.
func DefaultProviders() map[string]Provider {
	return map[string]Provider{
		ProviderOllama: {
			ID:      ProviderOllama,
			Name:    "Ollama",
			BaseURL: "http://127.0.0.1:11434/v1",
			Model:   "llama3.2:3b",
			Timeout: 300 * time.Second,
		},
		ProviderOpenAI: {
			ID:          ProviderOpenAI,
			Name:        "OpenAI",
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			Timeout:     120 * time.Second,
			RequiresKey: true,
		},
		ProviderGroq: {
			ID:          ProviderGroq,
			Name:        "Groq",
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.3-70b-versatile",
			Timeout:     60 * time.Second,
			RequiresKey: true,
		},
		ProviderGoogle: {
			ID:          ProviderGoogle,
			Name:        "Google AI (Gemini)",
			BaseURL:     "https://generativelanguage.googleapis.com",
			Model:       "gemini-2.5-flash",
			Timeout:     120 * time.Second,
			RequiresKey: true,
			format:      formatGeminiNative,
		},
		ProviderCustomOpenAI: {
			ID:      ProviderCustomOpenAI,
			Name:    "Custom OpenAI",
			Timeout: 120 * time.Second,
		},
	}
}

// IDs returns the known provider IDs, sorted.
func IDs() []string {
	defaults := DefaultProviders()
	ids := make([]string, 0, len(defaults))
	for id := range defaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the default definition for id. Unknown IDs are treated as
// custom OpenAI-compatible endpoints.
func Lookup(id string) (Provider, bool) {
	p, ok := DefaultProviders()[strings.ToLower(id)]
	if !ok {
		p = DefaultProviders()[ProviderCustomOpenAI]
		p.Name = id
	}
	return p, ok
}

// Validate checks that p has what its API needs.
func (p Provider) Validate() error {
	if p.BaseURL == "" {
		return fmt.Errorf("provider %q requires an endpoint URL (--endpoint)", p.ID)
	}
	if _, err := url.Parse(p.BaseURL); err != nil {
		return fmt.Errorf("provider %q: invalid endpoint %q: %w", p.ID, p.BaseURL, err)
	}
	if p.Model == "" {
		return fmt.Errorf("provider %q requires a model (--model)", p.ID)
	}
	if p.RequiresKey && p.APIKey == "" {
		return fmt.Errorf("provider %q requires an API key\n\n"+
			"Option 1: Store your API key:\n"+
			"  localetree auth login --provider %s\n\n"+
			"Option 2: Pass key directly:\n"+
			"  --api-key YOUR_KEY or export LOCALETREE_API_KEY=YOUR_KEY", p.ID, p.ID)
	}
	return nil
}

// New returns the oracle implementation for p.
func New(p Provider) (Oracle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.format {
	case formatGeminiNative:
		return newGemini(p), nil
	default:
		return newOpenAI(p), nil
	}
}

// ---------------------------------------------------------------------------
// HTTP client with real proxy support
// ---------------------------------------------------------------------------

func makeHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Support both --proxy flag and HTTP_PROXY/HTTPS_PROXY env vars
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// truncate truncates a string to maxLen bytes.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
