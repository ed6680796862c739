// Package translate turns a serialized locale document into its
// translation with one call to a chat-completion oracle.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minios-linux/localetree/jsondoc"
	"github.com/minios-linux/localetree/langmeta"
	"github.com/minios-linux/localetree/provider"
)

// DefaultSystemPrompt instructs the model to translate a JSON document and
// answer with JSON only. {{sourceLang}} and {{targetLang}} are replaced with
// English language names.
const DefaultSystemPrompt = `You are a professional translator. Your task is to translate text from {{sourceLang}} to {{targetLang}} while strictly preserving the JSON structure. The user will provide the text, and you must return only the translated JSON content without any additional text or explanations.`

// DefaultTemperature favors faithful output over creative rewording.
const DefaultTemperature = 0.5

var (
	// ErrInvalidReply is returned when the model reply is not valid JSON.
	ErrInvalidReply = errors.New("model reply is not valid JSON")
	// ErrStructureMismatch is returned in strict mode when the reply's key
	// paths differ from the source document's.
	ErrStructureMismatch = errors.New("translated document structure differs from source")
)

// Options controls the translation behavior.
type Options struct {
	// Model is the model identifier sent with every request.
	Model string
	// Temperature is the sampling temperature; nil means DefaultTemperature.
	// Zero is sent as zero.
	Temperature *float64
	// SystemPrompt overrides DefaultSystemPrompt.
	SystemPrompt string
	// Strict rejects replies whose key paths differ from the source.
	Strict bool
	// OnDebug receives the outgoing request and the raw reply.
	OnDebug func(format string, args ...any)
}

func (o *Options) debug(format string, args ...any) {
	if o.OnDebug != nil {
		o.OnDebug(format, args...)
	}
}

func (o *Options) effectiveTemperature() float64 {
	if o.Temperature != nil {
		return *o.Temperature
	}
	return DefaultTemperature
}

// resolvedPrompt returns the system prompt with language placeholders filled.
func (o *Options) resolvedPrompt(sourceLang, targetLang string) string {
	prompt := o.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	return strings.NewReplacer(
		"{{sourceLang}}", langmeta.EnglishName(sourceLang),
		"{{targetLang}}", langmeta.EnglishName(targetLang),
	).Replace(prompt)
}

// Translator submits documents to an oracle.
type Translator struct {
	oracle provider.Oracle
	opts   Options
}

// New returns a Translator backed by oracle.
func New(oracle provider.Oracle, opts Options) *Translator {
	return &Translator{oracle: oracle, opts: opts}
}

// Translate sends documentText to the oracle and parses the reply as JSON.
// The reply is accepted as-is unless Options.Strict is set.
func (t *Translator) Translate(ctx context.Context, documentText, sourceLang, targetLang string) (jsondoc.Value, error) {
	req := provider.Request{
		Model:       t.opts.Model,
		System:      t.opts.resolvedPrompt(sourceLang, targetLang),
		User:        documentText,
		Temperature: t.opts.effectiveTemperature(),
	}
	t.opts.debug("request: model=%s temperature=%.2f\n[system] %s\n[user] %s", req.Model, req.Temperature, req.System, req.User)

	reply, err := t.oracle.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling model: %w", err)
	}
	t.opts.debug("response: %s", reply)

	translated, err := jsondoc.Decode([]byte(reply))
	if err != nil {
		return nil, fmt.Errorf("%w: %v\nResponse: %s", ErrInvalidReply, err, truncate(reply, 300))
	}

	if t.opts.Strict {
		source, err := jsondoc.Decode([]byte(documentText))
		if err != nil {
			return nil, fmt.Errorf("parsing source document: %w", err)
		}
		if d := jsondoc.CompareStructure(source, translated); !d.Empty() {
			return nil, fmt.Errorf("%w: %s", ErrStructureMismatch, d)
		}
	}

	return translated, nil
}

// truncate truncates a string to maxLen bytes.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
