package jsondoc

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeAndMarshal_PreservesOrder(t *testing.T) {
	data := []byte(`{"zeta": "Z", "alpha": {"second": "2", "first": "1"}, "mid": "M"}`)

	v, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("Decode returned %T, want *Object", v)
	}
	if got, want := obj.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	want := `{
  "zeta": "Z",
  "alpha": {
    "second": "2",
    "first": "1"
  },
  "mid": "M"
}
`
	if string(out) != want {
		t.Fatalf("Marshal output:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshal_NoEscaping(t *testing.T) {
	obj := NewObject()
	obj.Set("greeting", "Ciao, è già <b>pronto</b> & \"ok\"")

	out, err := Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "è già") {
		t.Errorf("non-ASCII was escaped: %s", s)
	}
	if !strings.Contains(s, "<b>pronto</b> &") {
		t.Errorf("HTML characters were escaped: %s", s)
	}
	if !strings.Contains(s, `\"ok\"`) {
		t.Errorf("quotes not escaped: %s", s)
	}
}

func TestDecode_ScalarsAndArrays(t *testing.T) {
	v, err := Decode([]byte(`{"n": 1.50, "b": true, "z": null, "list": ["a", {"k": "v"}], "empty": {}}`))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	obj := v.(*Object)

	n, _ := obj.Get("n")
	if n != json.Number("1.50") {
		t.Errorf("n = %#v, want json.Number(1.50)", n)
	}
	b, _ := obj.Get("b")
	if b != true {
		t.Errorf("b = %#v, want true", b)
	}
	if z, ok := obj.Get("z"); !ok || z != nil {
		t.Errorf("z = %#v (present %v), want nil", z, ok)
	}

	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(out), `"n": 1.50`) {
		t.Errorf("number formatting changed: %s", out)
	}
	if !strings.Contains(string(out), `"empty": {}`) {
		t.Errorf("empty object not kept: %s", out)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "truncated", in: `{"broken":`},
		{name: "prose", in: `Here is your translation: {"a": "b"}`},
		{name: "trailing value", in: `{"a": "b"} {"c": "d"}`},
		{name: "numeric key", in: `{1: "x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.in)); err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tc.in)
			}
		})
	}

	if _, err := Decode([]byte(`{"a": "b"} {"c": "d"}`)); !errors.Is(err, ErrTrailingData) {
		t.Errorf("trailing value error = %v, want ErrTrailingData", err)
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	obj := NewObject()
	obj.Set("b", "2")
	obj.Set("a", "1")
	obj.Set("b", "3")

	data, err := json.Marshal(map[string]any{"doc": obj})
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if string(data) != `{"doc":{"b":"3","a":"1"}}` {
		t.Fatalf("json.Marshal = %s", data)
	}
}
