// localetree mirrors a tree of source-locale JSON documents into a target
// locale, translating each document through a chat-completion model.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/minios-linux/localetree/config"
	"github.com/minios-linux/localetree/i18n"
	"github.com/minios-linux/localetree/langmeta"
	"github.com/minios-linux/localetree/ledger"
	"github.com/minios-linux/localetree/provider"
	"github.com/minios-linux/localetree/settings"
	"github.com/minios-linux/localetree/translate"
	"github.com/minios-linux/localetree/walker"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorGray   = "\033[0;90m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

func logDebug(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGray+"[DEBUG] "+format+colorReset+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	var a translateArgs

	root := &cobra.Command{
		Use:   "localetree",
		Short: "Translate a tree of JSON locale files with an AI model",
		Long: `localetree mirrors a directory of source-locale JSON documents
(e.g. public/locales/en) into a target locale (e.g. public/locales/it),
translating every document that does not exist in the target yet.

Existing target files are never touched: run it again after adding source
files and only the new ones are translated.

Commands:
  translate   Translate missing target documents (default)
  status      Show which documents are translated, stale or pending
  init        Write a .localetree.yaml with the defaults
  auth        Manage provider API keys

AI Providers:
  ollama         Ollama local server (default)
  openai         OpenAI API key
  groq           Groq API key
  google         Google AI (Gemini) API key
  custom-openai  Any OpenAI-compatible endpoint`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, a)
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory (holds .localetree.yaml)")
	addTranslateFlags(root.Flags(), &a)

	root.AddCommand(
		newTranslateCmd(),
		newStatusCmd(),
		newInitCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on the first interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			logWarning("%s", i18n.T("Interrupted, cancelling"))
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "localetree version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// translate
// ---------------------------------------------------------------------------

type translateArgs struct {
	sourceRoot, targetRoot string
	sourceLang, targetLang string

	provider, model, endpoint, apiKey string
	proxy                             string
	timeout                           time.Duration

	temperature float64
	prompt      string

	strict, keepGoing, dryRun, verbose bool
}

func addTranslateFlags(fs *pflag.FlagSet, a *translateArgs) {
	fs.StringVar(&a.sourceRoot, "source-root", "", "Source locale directory (default public/locales/en)")
	fs.StringVar(&a.targetRoot, "target-root", "", "Target locale directory (default public/locales/it)")
	fs.StringVar(&a.sourceLang, "source-lang", "", "Source language code (default en)")
	fs.StringVar(&a.targetLang, "target-lang", "", "Target language code (default it)")

	fs.StringVar(&a.provider, "provider", "", "AI provider: "+strings.Join(provider.IDs(), ", "))
	fs.StringVar(&a.model, "model", "", "Model name (default: provider default)")
	fs.StringVar(&a.endpoint, "endpoint", "", "API base URL (default: provider default)")
	fs.StringVar(&a.apiKey, "api-key", "", "API key (or "+settings.EnvAPIKey+" env var)")
	fs.StringVar(&a.proxy, "proxy", "", "HTTP/HTTPS proxy URL")
	fs.DurationVar(&a.timeout, "timeout", 0, "Request timeout (0 = provider default)")

	fs.Float64Var(&a.temperature, "temperature", config.DefaultTemperature, "Sampling temperature")
	fs.StringVar(&a.prompt, "prompt", "", "Custom system prompt ({{sourceLang}} and {{targetLang}} placeholders)")

	fs.BoolVar(&a.strict, "strict", false, "Reject translations whose keys differ from the source")
	fs.BoolVar(&a.keepGoing, "keep-going", false, "Continue past failing files and report them at the end")
	fs.BoolVar(&a.dryRun, "dry-run", false, "Show what would be translated without calling the model")
	fs.BoolVar(&a.verbose, "verbose", false, "Print model requests and replies")
}

func newTranslateCmd() *cobra.Command {
	var a translateArgs

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate missing target documents",
		Long: `Walk the source locale tree depth-first and translate every JSON
document whose target does not exist yet. Directories are mirrored;
anything that is neither a directory nor a .json file is reported and
skipped.

Examples:
  # Local Ollama with the defaults (public/locales/en -> public/locales/it)
  localetree translate

  # German with Groq
  localetree translate --provider groq --target-lang de --target-root public/locales/de

  # Show what would be translated
  localetree translate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, a)
		},
	}
	addTranslateFlags(cmd.Flags(), &a)

	_ = cmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, id := range provider.IDs() {
			p, _ := provider.Lookup(id)
			out = append(out, id+"\t"+p.Name)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// applyFlags overlays the flags the user set onto cfg.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config, a translateArgs) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("source-root", &cfg.SourceRoot, a.sourceRoot)
	set("target-root", &cfg.TargetRoot, a.targetRoot)
	set("source-lang", &cfg.SourceLang, a.sourceLang)
	set("target-lang", &cfg.TargetLang, a.targetLang)
	set("provider", &cfg.Provider, a.provider)
	set("model", &cfg.Model, a.model)
	set("endpoint", &cfg.Endpoint, a.endpoint)
	set("api-key", &cfg.APIKey, a.apiKey)
	set("proxy", &cfg.Proxy, a.proxy)
	set("prompt", &cfg.Prompt, a.prompt)

	if fs.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if fs.Changed("temperature") {
		cfg.Temperature = a.temperature
	}
	if fs.Changed("strict") {
		cfg.Strict = a.strict
	}
	if fs.Changed("keep-going") {
		cfg.KeepGoing = a.keepGoing
	}
}

// loadConfig returns the configuration for rootDir with flags applied.
func loadConfig(cmd *cobra.Command, a translateArgs) (config.Config, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd.Flags(), &cfg, a)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ResolvePaths(absRoot)
	return cfg, nil
}

// resolveProvider merges config, stored credentials and environment into
// the provider settings for this run.
func resolveProvider(cfg config.Config) provider.Provider {
	p := cfg.ProviderSettings()
	storeID := p.ID
	if cfg.Provider != "" && !strings.EqualFold(cfg.Provider, p.ID) {
		// Custom endpoints are stored under the name the user chose.
		storeID = cfg.Provider
	}
	p.APIKey = settings.ResolveAPIKey(storeID, cfg.APIKey)
	if cfg.Endpoint == "" {
		if u := settings.GetBaseURL(storeID); u != "" {
			p.BaseURL = u
		}
	}
	return p
}

func runTranslate(cmd *cobra.Command, a translateArgs) error {
	cfg, err := loadConfig(cmd, a)
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.SourceRoot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf(i18n.T("source directory not found: %s"), cfg.SourceRoot)
	}

	prov := resolveProvider(cfg)
	temperature := cfg.Temperature
	var tr walker.Translator
	if !a.dryRun {
		oracle, err := provider.New(prov)
		if err != nil {
			return err
		}
		var onDebug func(string, ...any)
		if a.verbose {
			onDebug = logDebug
		}
		tr = translate.New(oracle, translate.Options{
			Model:        prov.Model,
			Temperature:  &temperature,
			SystemPrompt: cfg.Prompt,
			Strict:       cfg.Strict,
			OnDebug:      onDebug,
		})
	}

	absRoot, _ := filepath.Abs(rootDir)
	ldg, err := ledger.Load(absRoot)
	if err != nil {
		return err
	}

	logInfo(i18n.T("Translating %s (%s) -> %s (%s)"),
		cfg.SourceRoot, langmeta.EnglishName(cfg.SourceLang),
		cfg.TargetRoot, langmeta.EnglishName(cfg.TargetLang))
	if !a.dryRun {
		logInfo(i18n.T("Provider: %s, model: %s"), prov.Name, prov.Model)
	}

	w := walker.New(walker.NewDirSource(cfg.SourceRoot), walker.NewDirSink(cfg.TargetRoot), tr, walker.Options{
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
		KeepGoing:  cfg.KeepGoing,
		DryRun:     a.dryRun,
		OnVisit: func(v walker.Visit) {
			logVisit(cfg, v, a.verbose)
		},
		OnTranslated: func(rel string, source []byte) {
			ldg.Record(ledger.Key(absRoot, cfg.TargetRoot, rel), source, prov.ID, prov.Model, time.Now())
		},
	})

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	report, runErr := w.Run(ctx)

	if report.Count(walker.Translated) > 0 {
		if err := ldg.Save(); err != nil {
			logWarning(i18n.T("Could not update %s: %v"), ledger.FileName, err)
		}
	}

	printSummary(report, a.dryRun)
	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return errors.New(i18n.T("translation interrupted"))
		}
		return runErr
	}
	return nil
}

func logVisit(cfg config.Config, v walker.Visit, verbose bool) {
	display := v.Path
	if display == "" {
		display = "."
	}
	target := filepath.Join(cfg.TargetRoot, filepath.FromSlash(v.Path))

	switch v.State {
	case walker.Skipped:
		logInfo(i18n.T("Translation already exists: %s"), target)
	case walker.Translated:
		logSuccess(i18n.T("Translated: %s -> %s"), display, target)
	case walker.Planned:
		logInfo(i18n.T("Would translate: %s -> %s"), display, target)
	case walker.Rejected:
		logWarning(i18n.T("Invalid file path: %s"), filepath.Join(cfg.SourceRoot, filepath.FromSlash(v.Path)))
	case walker.Failed:
		if cfg.KeepGoing {
			logError("%v", v.Err)
		}
	case walker.Recursed:
		if verbose {
			logDebug(i18n.T("Entering directory: %s"), display)
		}
	}
}

func printSummary(r *walker.Report, dryRun bool) {
	if dryRun {
		logInfo(i18n.T("Dry run: %d to translate, %d already present, %d invalid"),
			r.Count(walker.Planned), r.Count(walker.Skipped), r.Count(walker.Rejected))
		return
	}
	msg := fmt.Sprintf(i18n.T("%d translated, %d already present, %d invalid"),
		r.Count(walker.Translated), r.Count(walker.Skipped), r.Count(walker.Rejected))
	if failed := r.Count(walker.Failed); failed > 0 {
		logWarning("%s, %s", msg, fmt.Sprintf(i18n.N("%d failed", "%d failed", failed), failed))
		return
	}
	logSuccess("%s", msg)
}

// ---------------------------------------------------------------------------
// status (read-only)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	var a translateArgs

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the translation status of every source document",
		Long: `List every JSON document of the source tree with its state:

  translated  target exists and the source is unchanged since it was written
  stale       target exists but the source changed afterwards
  untracked   target exists but was not written by localetree
  pending     no target yet; the next translate run creates it

Stale documents are not re-translated automatically: delete the target to
translate it again. Does not modify any files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, a)
			if err != nil {
				return err
			}
			absRoot, _ := filepath.Abs(rootDir)
			ldg, err := ledger.Load(absRoot)
			if err != nil {
				return err
			}
			rows, err := collectStatus(cfg, absRoot, ldg)
			if err != nil {
				return err
			}
			printStatus(cmd.ErrOrStderr(), cfg, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.sourceRoot, "source-root", "", "Source locale directory")
	cmd.Flags().StringVar(&a.targetRoot, "target-root", "", "Target locale directory")
	cmd.Flags().StringVar(&a.targetLang, "target-lang", "", "Target language code")

	return cmd
}

type statusRow struct {
	Path  string
	State ledger.State
}

func collectStatus(cfg config.Config, absRoot string, ldg *ledger.Ledger) ([]statusRow, error) {
	src := walker.NewDirSource(cfg.SourceRoot)
	files, err := walker.Files(src)
	if err != nil {
		return nil, err
	}
	sink := walker.NewDirSink(cfg.TargetRoot)

	rows := make([]statusRow, 0, len(files))
	for _, rel := range files {
		source, err := src.Read(rel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rel, err)
		}
		exists, err := sink.Exists(rel)
		if err != nil {
			return nil, err
		}
		rows = append(rows, statusRow{
			Path:  rel,
			State: ldg.Status(ledger.Key(absRoot, cfg.TargetRoot, rel), source, exists),
		})
	}
	return rows, nil
}

func stateColor(s ledger.State) string {
	switch s {
	case ledger.StateTranslated:
		return colorGreen
	case ledger.StateStale:
		return colorYellow
	case ledger.StatePending:
		return colorRed
	default:
		return colorBlue
	}
}

func printStatus(w io.Writer, cfg config.Config, rows []statusRow) {
	fmt.Fprintf(w, "\n%s%s%s\n", colorBlue, i18n.T("Locales"), colorReset)
	fmt.Fprintf(w, "  %-8s %s (%s)\n", i18n.T("Source:"), cfg.SourceRoot, langmeta.Resolve(cfg.SourceLang).English)
	fmt.Fprintf(w, "  %-8s %s (%s)\n\n", i18n.T("Target:"), cfg.TargetRoot, langmeta.Resolve(cfg.TargetLang).English)

	if len(rows) == 0 {
		fmt.Fprintf(w, "  %s\n\n", i18n.T("No JSON documents in the source tree"))
		return
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.Path))
	}
	counts := make(map[ledger.State]int)
	for _, r := range rows {
		counts[r.State]++
		fmt.Fprintf(w, "  %-*s  %s%s%s\n", width, r.Path, stateColor(r.State), r.State, colorReset)
	}

	done := counts[ledger.StateTranslated] + counts[ledger.StateStale] + counts[ledger.StateUntracked]
	fmt.Fprintf(w, "\n  %s %s\n\n", progressBar(done*100/len(rows), 20),
		fmt.Sprintf(i18n.T("%d/%d present (%d stale, %d untracked, %d pending)"),
			done, len(rows), counts[ledger.StateStale], counts[ledger.StateUntracked], counts[ledger.StatePending]))
}

func progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100

	color := colorRed
	switch {
	case percent >= 100:
		color = colorGreen
	case percent >= 50:
		color = colorYellow
	}
	return fmt.Sprintf("%s%s%s%s %3d%%", color,
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), colorReset, percent)
}

// ---------------------------------------------------------------------------
// init
// ---------------------------------------------------------------------------

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .localetree.yaml with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(rootDir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf(i18n.T("%s already exists (use --force to overwrite)"), path)
			}
			if err := config.Write(rootDir, config.Default()); err != nil {
				return err
			}
			logSuccess(i18n.T("Created %s"), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// ---------------------------------------------------------------------------
// auth
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage provider API keys",
		Long: `Store, remove and list API keys for AI providers.

Keys are kept in ` + "$XDG_DATA_HOME/localetree/auth.json" + ` with 0600
permissions. --api-key and ` + settings.EnvAPIKey + ` take precedence over
stored keys.`,
	}
	cmd.AddCommand(newAuthLoginCmd(), newAuthLogoutCmd(), newAuthListCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var providerID, apiKey, baseURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key for a provider",
		Long: `Store an API key for a provider. Without --api-key the key is read
from standard input.

Examples:
  localetree auth login --provider groq
  localetree auth login --provider my-gateway --base-url http://gw.local/v1 --api-key sk-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if providerID == "" {
				return errors.New(i18n.T("--provider is required"))
			}
			if providerID == provider.ProviderOllama {
				return errors.New(i18n.T("ollama does not need an API key"))
			}
			return authLogin(cmd.InOrStdin(), providerID, apiKey, baseURL)
		},
	}
	cmd.Flags().StringVar(&providerID, "provider", "", "Provider ID (required)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (read from stdin if omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Endpoint URL for OpenAI-compatible gateways")
	return cmd
}

func authLogin(in io.Reader, providerID, key, baseURL string) error {
	existing := settings.Get(providerID)
	if baseURL == "" && existing != nil {
		baseURL = existing.BaseURL
	}

	if key == "" {
		if existing != nil && existing.Key != "" {
			fmt.Fprintf(os.Stderr, i18n.T("  Current key: %s%s%s\n"), colorYellow, settings.MaskKey(existing.Key), colorReset)
			fmt.Fprint(os.Stderr, i18n.T("  Enter new key to replace, or press Enter to keep: "))
		} else {
			fmt.Fprint(os.Stderr, i18n.T("  Enter API key: "))
		}

		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			return errors.New(i18n.T("no input received"))
		}
		key = strings.TrimSpace(scanner.Text())
		if key == "" {
			if existing != nil && existing.Key != "" {
				logInfo("%s", i18n.T("Keeping existing key"))
				return nil
			}
			return errors.New(i18n.T("no API key provided"))
		}
	}

	if err := settings.SetAPIKey(providerID, key, baseURL); err != nil {
		return fmt.Errorf(i18n.T("failed to save API key: %w"), err)
	}
	logSuccess(i18n.T("%s API key saved"), providerID)
	return nil
}

func newAuthLogoutCmd() *cobra.Command {
	var providerID string
	var all bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long: `Remove the stored key of one provider, or of all providers with --all.

Examples:
  localetree auth logout --provider groq
  localetree auth logout --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all:
				if err := settings.RemoveAll(); err != nil {
					return err
				}
				logSuccess("%s", i18n.T("All stored credentials removed"))
			case providerID != "":
				if err := settings.Remove(providerID); err != nil {
					return fmt.Errorf(i18n.T("failed to remove %s credentials: %w"), providerID, err)
				}
				logSuccess(i18n.T("%s credentials removed"), providerID)
			default:
				return errors.New(i18n.T("specify --provider or --all"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&providerID, "provider", "", "Provider to log out")
	cmd.Flags().BoolVar(&all, "all", false, "Remove credentials of every provider")
	return cmd
}

func newAuthListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored credentials",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCredentials(cmd.ErrOrStderr(), settings.Load())
		},
	}
}

func printCredentials(w io.Writer, store settings.Store) {
	fmt.Fprintf(w, "\n%s%s%s\n", colorBlue, i18n.T("Stored Credentials"), colorReset)
	fmt.Fprintf(w, "  %s\n\n", settings.FilePath())

	seen := make(map[string]bool)
	for _, id := range provider.IDs() {
		seen[id] = true
		if id == provider.ProviderOllama {
			fmt.Fprintf(w, "  %-14s %s\n", id, i18n.T("no key needed"))
			continue
		}
		printCredential(w, id, store[id])
	}
	for _, id := range store.Providers() {
		if !seen[id] {
			printCredential(w, id, store[id])
		}
	}

	if envKey := os.Getenv(settings.EnvAPIKey); envKey != "" {
		fmt.Fprintf(w, "\n  %s: %s%s%s %s\n", settings.EnvAPIKey,
			colorGreen, settings.MaskKey(envKey), colorReset, i18n.T("(overrides stored keys)"))
	}
	fmt.Fprintln(w)
}

func printCredential(w io.Writer, id string, info *settings.Info) {
	if info == nil || !info.IsAPI() {
		fmt.Fprintf(w, "  %-14s %s%s%s\n", id, colorRed, i18n.T("not configured"), colorReset)
		return
	}
	status := fmt.Sprintf("%s%s%s (%s)", colorGreen, i18n.T("configured"), colorReset, settings.MaskKey(info.Key))
	if info.BaseURL != "" {
		status += " " + info.BaseURL
	}
	fmt.Fprintf(w, "  %-14s %s\n", id, status)
}
