package jsondoc

import (
	"sort"
	"strconv"
	"strings"
)

// leaf is one terminal position in a document: a scalar, or an empty
// object or array.
type leaf struct {
	segs  []string // object keys, or "#"+index for array elements
	empty string   // "{}" or "[]" for empty containers, "" for scalars
	value Value
}

// key encodes l unambiguously: keys containing dots, keys that look like
// indices and empty containers all compare distinct.
func (l leaf) key() string {
	return strings.Join(l.segs, "\x00") + "\x01" + l.empty
}

// display renders l as a dotted path. Dots and backslashes inside keys are
// backslash-escaped; empty containers get a "{}" or "[]" suffix.
func (l leaf) display() string {
	parts := make([]string, len(l.segs))
	for i, s := range l.segs {
		if idx, ok := strings.CutPrefix(s, "#"); ok {
			parts[i] = idx
			continue
		}
		parts[i] = escapeKey(strings.TrimPrefix(s, "."))
	}
	return strings.Join(parts, ".") + l.empty
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

func escapeKey(k string) string {
	return keyEscaper.Replace(k)
}

func collectLeaves(v Value) []leaf {
	var out []leaf
	var walk func(v Value, segs []string)
	walk = func(v Value, segs []string) {
		switch x := v.(type) {
		case *Object:
			if len(x.keys) == 0 {
				out = append(out, leaf{segs: segs, empty: "{}", value: v})
				return
			}
			for _, k := range x.keys {
				walk(x.values[k], appendSeg(segs, "."+k))
			}
		case []Value:
			if len(x) == 0 {
				out = append(out, leaf{segs: segs, empty: "[]", value: v})
				return
			}
			for i, item := range x {
				walk(item, appendSeg(segs, "#"+strconv.Itoa(i)))
			}
		default:
			out = append(out, leaf{segs: segs, value: v})
		}
	}
	walk(v, nil)
	return out
}

// appendSeg copies segs so sibling paths never share a backing array.
func appendSeg(segs []string, s string) []string {
	out := make([]string, len(segs)+1)
	copy(out, segs)
	out[len(segs)] = s
	return out
}

// LeafPaths returns the dotted path of every scalar and every empty
// container, in document order. Array elements use their index as a
// segment ("list.0"), dots inside keys are escaped ("a\.b"), and empty
// containers end in "{}" or "[]".
func LeafPaths(v Value) []string {
	leaves := collectLeaves(v)
	out := make([]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.display()
	}
	return out
}

// Strings returns the number of string leaves, the translatable units of a
// locale document.
func Strings(v Value) int {
	n := 0
	for _, l := range collectLeaves(v) {
		if _, ok := l.value.(string); ok {
			n++
		}
	}
	return n
}

// Diff describes leaf paths present in only one of two documents.
type Diff struct {
	Missing []string // in the source, absent from the translation
	Extra   []string // in the translation, absent from the source
}

// Empty reports whether both documents have the same leaf paths.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// String summarizes the diff in one line.
func (d Diff) String() string {
	var parts []string
	if len(d.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(d.Missing, ", "))
	}
	if len(d.Extra) > 0 {
		parts = append(parts, "extra: "+strings.Join(d.Extra, ", "))
	}
	return strings.Join(parts, "; ")
}

// CompareStructure compares the leaf paths of a source document and its
// translation. Scalar values are not compared.
func CompareStructure(source, translated Value) Diff {
	index := func(v Value) map[string]string {
		m := make(map[string]string)
		for _, l := range collectLeaves(v) {
			m[l.key()] = l.display()
		}
		return m
	}
	src, dst := index(source), index(translated)

	var d Diff
	for k, p := range src {
		if _, ok := dst[k]; !ok {
			d.Missing = append(d.Missing, p)
		}
	}
	for k, p := range dst {
		if _, ok := src[k]; !ok {
			d.Extra = append(d.Extra, p)
		}
	}
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)
	return d
}
