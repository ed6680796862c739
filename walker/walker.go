// Package walker traverses a source-locale tree depth-first and mirrors
// every JSON document into the target-locale tree through a Translator.
//
// Each relative path is classified once as a File, Directory or Invalid
// node and ends in exactly one terminal state:
//
//	File       target exists          -> Skipped
//	File       translated and written -> Translated
//	Directory  entries processed      -> Recursed
//	Invalid                           -> Rejected
//
// A target file is written at most once; its existence is the only record
// that a path is done.
package walker

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/minios-linux/localetree/jsondoc"
)

// State is the terminal outcome of processing a path.
type State int

const (
	Unvisited State = iota
	Skipped
	Translated
	Recursed
	Rejected
	// Failed is recorded when processing a path returned an error.
	Failed
	// Planned marks a file a dry run would translate.
	Planned
)

var stateNames = map[State]string{
	Unvisited:  "unvisited",
	Skipped:    "skipped",
	Translated: "translated",
	Recursed:   "recursed",
	Rejected:   "rejected",
	Failed:     "failed",
	Planned:    "planned",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Visit records the outcome for one path.
type Visit struct {
	Path  string
	State State
	Err   error
}

// Report is the ordered list of visits of one traversal.
type Report struct {
	Visits []Visit
}

// Count returns how many visits ended in state s.
func (r *Report) Count(s State) int {
	n := 0
	for _, v := range r.Visits {
		if v.State == s {
			n++
		}
	}
	return n
}

// Paths returns the visited paths in traversal order.
func (r *Report) Paths() []string {
	out := make([]string, len(r.Visits))
	for i, v := range r.Visits {
		out[i] = v.Path
	}
	return out
}

// Translator turns a serialized document into its translation.
type Translator interface {
	Translate(ctx context.Context, documentText, sourceLang, targetLang string) (jsondoc.Value, error)
}

// Options controls the traversal.
type Options struct {
	SourceLang string
	TargetLang string
	// KeepGoing records failing files and continues with the rest of the
	// tree instead of aborting on the first error.
	KeepGoing bool
	// DryRun classifies and checks targets without translating or writing.
	DryRun bool
	// OnVisit is called once per path, after its state is known.
	OnVisit func(Visit)
	// OnTranslated is called after a target is written, with the raw
	// source bytes.
	OnTranslated func(rel string, source []byte)
}

// Walker mirrors a Source tree into a Sink.
type Walker struct {
	src  Source
	dst  Sink
	tr   Translator
	opts Options

	report *Report
	errs   []error
}

// New returns a Walker. tr may be nil when opts.DryRun is set.
func New(src Source, dst Sink, tr Translator, opts Options) *Walker {
	return &Walker{src: src, dst: dst, tr: tr, opts: opts, report: &Report{}}
}

// Run processes the whole source tree, starting at its root.
func (w *Walker) Run(ctx context.Context) (*Report, error) {
	return w.RunFrom(ctx, "")
}

// RunFrom processes the subtree at rel and returns a fresh report.
func (w *Walker) RunFrom(ctx context.Context, rel string) (*Report, error) {
	w.report = &Report{}
	w.errs = nil

	if err := w.Process(ctx, rel); err != nil {
		return w.report, err
	}
	return w.report, errors.Join(w.errs...)
}

// Process handles one relative path. Directories recurse depth-first.
func (w *Walker) Process(ctx context.Context, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel = cleanRel(rel)

	switch n := w.src.Classify(rel).(type) {
	case File:
		return w.processFile(ctx, n)
	case Directory:
		return w.processDirectory(ctx, n)
	case Invalid:
		w.record(Visit{Path: n.Path, State: Rejected})
		return nil
	default:
		return fmt.Errorf("%s: unknown node type %T", rel, n)
	}
}

func (w *Walker) processFile(ctx context.Context, f File) error {
	exists, err := w.dst.Exists(f.Path)
	if err != nil {
		return w.fail(ctx, f.Path, err)
	}
	if exists {
		w.record(Visit{Path: f.Path, State: Skipped})
		return nil
	}
	if w.opts.DryRun {
		w.record(Visit{Path: f.Path, State: Planned})
		return nil
	}

	source, err := w.src.Read(f.Path)
	if err != nil {
		return w.fail(ctx, f.Path, fmt.Errorf("reading source: %w", err))
	}
	doc, err := jsondoc.Decode(source)
	if err != nil {
		return w.fail(ctx, f.Path, fmt.Errorf("parsing source: %w", err))
	}
	text, err := jsondoc.Marshal(doc)
	if err != nil {
		return w.fail(ctx, f.Path, fmt.Errorf("serializing source: %w", err))
	}

	translated, err := w.tr.Translate(ctx, string(text), w.opts.SourceLang, w.opts.TargetLang)
	if err != nil {
		return w.fail(ctx, f.Path, err)
	}
	out, err := jsondoc.Marshal(translated)
	if err != nil {
		return w.fail(ctx, f.Path, fmt.Errorf("serializing translation: %w", err))
	}
	if err := w.dst.Write(f.Path, out); err != nil {
		return w.fail(ctx, f.Path, err)
	}

	if w.opts.OnTranslated != nil {
		w.opts.OnTranslated(f.Path, source)
	}
	w.record(Visit{Path: f.Path, State: Translated})
	return nil
}

func (w *Walker) processDirectory(ctx context.Context, d Directory) error {
	names, err := w.src.List(d.Path)
	if err != nil {
		return w.fail(ctx, d.Path, fmt.Errorf("listing directory: %w", err))
	}
	w.record(Visit{Path: d.Path, State: Recursed})

	for _, name := range names {
		if err := w.Process(ctx, path.Join(d.Path, name)); err != nil {
			return err
		}
	}
	return nil
}

// fail records a failed visit. It returns the error unless KeepGoing is set
// and the context is still live.
func (w *Walker) fail(ctx context.Context, rel string, err error) error {
	wrapped := fmt.Errorf("%s: %w", displayPath(rel), err)
	w.record(Visit{Path: rel, State: Failed, Err: wrapped})

	if w.opts.KeepGoing && ctx.Err() == nil {
		w.errs = append(w.errs, wrapped)
		return nil
	}
	return wrapped
}

func (w *Walker) record(v Visit) {
	w.report.Visits = append(w.report.Visits, v)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(v)
	}
}

func displayPath(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}

// Files returns every File reachable from the root of src, in traversal
// order. Invalid entries are ignored.
func Files(src Source) ([]string, error) {
	var out []string
	var visit func(rel string) error
	visit = func(rel string) error {
		switch n := src.Classify(rel).(type) {
		case File:
			out = append(out, n.Path)
		case Directory:
			names, err := src.List(n.Path)
			if err != nil {
				return fmt.Errorf("%s: listing directory: %w", displayPath(n.Path), err)
			}
			for _, name := range names {
				if err := visit(path.Join(n.Path, name)); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := visit(""); err != nil {
		return nil, err
	}
	return out, nil
}
