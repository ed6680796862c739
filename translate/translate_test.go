package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minios-linux/localetree/jsondoc"
	"github.com/minios-linux/localetree/provider"
)

func float(v float64) *float64 { return &v }

func fixedOracle(reply string, got *provider.Request) provider.Oracle {
	return provider.OracleFunc(func(ctx context.Context, req provider.Request) (string, error) {
		if got != nil {
			*got = req
		}
		return reply, nil
	})
}

func TestTranslate_BuildsRequestAndParsesReply(t *testing.T) {
	var req provider.Request
	tr := New(fixedOracle(`{"hello": "Ciao"}`, &req), Options{Model: "llama3.2:3b"})

	doc := "{\n  \"hello\": \"Hello\"\n}\n"
	v, err := tr.Translate(context.Background(), doc, "en", "it")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	obj, ok := v.(*jsondoc.Object)
	if !ok {
		t.Fatalf("Translate returned %T, want *jsondoc.Object", v)
	}
	if got, _ := obj.Get("hello"); got != "Ciao" {
		t.Errorf("hello = %v, want Ciao", got)
	}

	if req.Model != "llama3.2:3b" {
		t.Errorf("model = %q", req.Model)
	}
	if req.Temperature != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, DefaultTemperature)
	}
	if req.User != doc {
		t.Errorf("user message = %q, want the document verbatim", req.User)
	}
	if !strings.Contains(req.System, "from English to Italian") {
		t.Errorf("system prompt not resolved: %q", req.System)
	}
	if strings.Contains(req.System, "{{") {
		t.Errorf("system prompt has unresolved placeholders: %q", req.System)
	}
}

func TestTranslate_CustomPromptAndTemperature(t *testing.T) {
	var req provider.Request
	tr := New(fixedOracle(`{}`, &req), Options{
		Model:        "m",
		Temperature:  float(0.2),
		SystemPrompt: "{{sourceLang}} -> {{targetLang}}, JSON only",
	})
	if _, err := tr.Translate(context.Background(), `{}`, "en", "de"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if req.System != "English -> German, JSON only" {
		t.Errorf("system = %q", req.System)
	}
	if req.Temperature != 0.2 {
		t.Errorf("temperature = %v", req.Temperature)
	}
}

func TestTranslate_InvalidReply(t *testing.T) {
	tr := New(fixedOracle("Sure! Here is the translation:\n```json\n{\"a\": \"b\"}\n```", nil), Options{})
	_, err := tr.Translate(context.Background(), `{"a": "x"}`, "en", "it")
	if !errors.Is(err, ErrInvalidReply) {
		t.Fatalf("err = %v, want ErrInvalidReply", err)
	}
}

func TestTranslate_OracleError(t *testing.T) {
	boom := errors.New("connection refused")
	tr := New(provider.OracleFunc(func(ctx context.Context, req provider.Request) (string, error) {
		return "", boom
	}), Options{})
	_, err := tr.Translate(context.Background(), `{}`, "en", "it")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped oracle error", err)
	}
}

func TestTranslate_MismatchedKeys(t *testing.T) {
	src := `{"hello": "Hello", "bye": "Bye"}`
	reply := `{"ciao": "Ciao"}`

	t.Run("accepted by default", func(t *testing.T) {
		tr := New(fixedOracle(reply, nil), Options{})
		if _, err := tr.Translate(context.Background(), src, "en", "it"); err != nil {
			t.Fatalf("Translate: %v", err)
		}
	})

	t.Run("rejected in strict mode", func(t *testing.T) {
		tr := New(fixedOracle(reply, nil), Options{Strict: true})
		_, err := tr.Translate(context.Background(), src, "en", "it")
		if !errors.Is(err, ErrStructureMismatch) {
			t.Fatalf("err = %v, want ErrStructureMismatch", err)
		}
		if !strings.Contains(err.Error(), "missing: bye, hello") {
			t.Errorf("error does not list missing keys: %v", err)
		}
	})
}

func TestTranslate_DebugReceivesRequestAndReply(t *testing.T) {
	var lines []string
	tr := New(fixedOracle(`{"k": "v"}`, nil), Options{OnDebug: func(format string, args ...any) {
		lines = append(lines, format)
	}})
	if _, err := tr.Translate(context.Background(), `{"k": "x"}`, "en", "it"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("debug called %d times, want 2", len(lines))
	}
}

func TestTranslate_ZeroTemperatureIsSent(t *testing.T) {
	var req provider.Request
	tr := New(fixedOracle(`{}`, &req), Options{Temperature: float(0)})
	if _, err := tr.Translate(context.Background(), `{}`, "en", "it"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if req.Temperature != 0 {
		t.Fatalf("temperature = %v, want 0", req.Temperature)
	}
}

func TestTranslate_StrictRejectsReshapedKeys(t *testing.T) {
	tests := []struct {
		name, src, reply string
	}{
		{"dotted key nested", `{"a.b": "y"}`, `{"a": {"b": "x"}}`},
		{"empty object dropped", `{"a": {}, "b": "B"}`, `{"b": "Bi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(fixedOracle(tt.reply, nil), Options{Strict: true})
			v, err := tr.Translate(context.Background(), tt.src, "en", "it")
			if !errors.Is(err, ErrStructureMismatch) {
				t.Fatalf("err = %v, want ErrStructureMismatch", err)
			}
			if v != nil {
				t.Fatalf("mismatched reply returned for writing: %v", v)
			}
		})
	}
}
