// Command foundry-render renders the inline @-directives embedded in
// Foundry-style journal files into presentational markup, or lints them for
// directives that would not resolve.
//
// Usage:
//
//	foundry-render [flags] journal1.json [journal2.json ...]
//
// With --world and no journal arguments, every journal in the world bundle
// is processed; with journal arguments, the bundle only supplies the
// cross-journal reference graph.
//
// Exit codes:
//
//	0  Rendered cleanly / lint found nothing (warnings allowed unless --strict)
//	1  Lint found problems (or warnings with --strict)
//	2  Input or parse error (missing file, invalid JSON, bad flags)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/TaleSale/Foundry-JSON-reader/internal/config"
	"github.com/TaleSale/Foundry-JSON-reader/internal/document"
	"github.com/TaleSale/Foundry-JSON-reader/internal/lang"
	"github.com/TaleSale/Foundry-JSON-reader/internal/lint"
	"github.com/TaleSale/Foundry-JSON-reader/internal/markup"
	"github.com/TaleSale/Foundry-JSON-reader/internal/report"
	"github.com/TaleSale/Foundry-JSON-reader/internal/schema"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("foundry-render", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to a YAML options file")
	langPath := fs.String("lang", "", "Path to a language JSON file (localization dictionary)")
	worldPath := fs.String("world", "", "Path to a world bundle JSON file (cross-journal graph)")
	formatFlag := fs.String("format", "", "Output format: text or json")
	doLint := fs.Bool("lint", false, "Lint directives instead of rendering")
	strict := fs.Bool("strict", false, "Treat lint warnings as errors")
	quiet := fs.Bool("quiet", false, "Suppress output (exit code only)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	rulesFlag := fs.String("rules", "", "Comma-separated lint rule names (default: all)")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Printf("foundry-render %s\n", version)
		return 0
	}

	setupLogging(*verbose)

	files := fs.Args()
	if len(files) == 0 && *worldPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input files specified")
		fs.Usage()
		return 2
	}

	opts := &config.Options{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		opts = loaded
	}

	// Flags override the options file.
	if *langPath != "" {
		opts.Language = *langPath
	}
	if *formatFlag != "" {
		opts.Format = *formatFlag
	}
	if *strict {
		opts.Strict = true
	}
	if *rulesFlag != "" {
		opts.LintRules = splitRules(*rulesFlag)
	}
	if opts.Format == "" {
		opts.Format = "text"
	}
	if opts.Format != "text" && opts.Format != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q (use text or json)\n", opts.Format)
		return 2
	}

	linter := lint.New()
	for _, name := range opts.LintRules {
		if !slices.Contains(linter.Rules(), name) {
			fmt.Fprintf(os.Stderr, "Error: unknown lint rule %q (known: %s)\n",
				name, strings.Join(linter.Rules(), ", "))
			return 2
		}
	}

	validator, err := schema.NewValidator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	var dict lang.Dictionary
	if opts.Language != "" {
		if code := validateInput(validator, schema.KindLanguage, opts.Language); code != 0 {
			return code
		}
		if dict, err = document.LoadDictionary(opts.Language); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		slog.Debug("loaded dictionary", "file", opts.Language)
	}

	var world *document.World
	if *worldPath != "" {
		if code := validateInput(validator, schema.KindWorld, *worldPath); code != 0 {
			return code
		}
		if world, err = document.LoadWorld(*worldPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		slog.Debug("loaded world", "file", *worldPath, "journals", len(world.Journals))
	}

	p := processor{
		opts:      opts,
		linter:    linter,
		validator: validator,
		world:     world,
		dict:      dict,
		lint:      *doLint,
		quiet:     *quiet,
	}

	exitCode := 0
	for _, path := range files {
		exitCode = max(exitCode, p.processFile(path))
	}
	if len(files) == 0 && world != nil {
		for i := range world.Journals {
			exitCode = max(exitCode, p.process(*worldPath, &world.Journals[i]))
		}
	}
	return exitCode
}

// processor holds everything needed to render or lint one journal.
type processor struct {
	opts      *config.Options
	linter    *lint.Linter
	validator *schema.Validator
	world     *document.World
	dict      lang.Dictionary
	lint      bool
	quiet     bool
}

// processFile schema-validates and loads the journal file at path, then
// renders or lints it.
func (p processor) processFile(path string) int {
	errs := p.validator.Validate(schema.KindJournal, path)
	for _, se := range errs {
		if se.ParseError {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", path, se.Message)
			return 2
		}
	}
	if len(errs) > 0 {
		if p.lint {
			r := report.NewReport(path)
			for _, se := range errs {
				r.AddFinding(report.NewError("SCHEMA", se.Message,
					report.Location{File: path, Path: se.Path}))
			}
			return max(1, p.output(r, nil))
		}
		for _, se := range errs {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", path, se)
		}
		return 2
	}

	j, err := document.LoadJournal(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return p.process(path, j)
}

// process renders or lints an already-loaded journal.
func (p processor) process(path string, j *document.Journal) int {
	ctx := markup.NewContext(j, p.world, p.dict)
	if p.opts.MaxLocalizeDepth > 0 {
		ctx.MaxDepth = p.opts.MaxLocalizeDepth
	}
	slog.Debug("processing journal", "file", path, "journal", j.Name, "pages", len(j.Pages))

	if p.lint {
		r := report.NewReport(path)
		r.SchemaValid = true
		for _, f := range p.linter.Lint(path, j, ctx, p.opts.LintRules) {
			r.AddFinding(f)
		}

		code := 0
		if r.HasErrors() || (p.opts.Strict && r.HasWarnings()) {
			code = 1
		}
		return max(code, p.output(r, nil))
	}

	rendered := renderJournal(path, j, ctx)
	return p.output(nil, &rendered)
}

// output prints either a lint report or a rendered journal in the configured
// format. It returns 2 on output errors, 0 otherwise.
func (p processor) output(r *report.Report, rendered *renderedJournal) int {
	if p.quiet {
		return 0
	}
	switch {
	case r != nil && p.opts.Format == "json":
		data, err := report.FormatJSON(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		fmt.Println(string(data))
	case r != nil:
		fmt.Print(report.FormatText(r))
	case p.opts.Format == "json":
		data, err := json.MarshalIndent(rendered, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		fmt.Println(string(data))
	default:
		fmt.Print(formatRenderedText(rendered))
	}
	return 0
}

// renderedJournal is the JSON shape of one rendered journal.
type renderedJournal struct {
	File    string         `json:"file"`
	ID      string         `json:"id,omitempty"`
	Journal string         `json:"journal"`
	Pages   []renderedPage `json:"pages"`
}

type renderedPage struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// renderJournal transforms every page's rich text.
func renderJournal(path string, j *document.Journal, ctx *markup.Context) renderedJournal {
	out := renderedJournal{File: path, ID: j.ID, Journal: j.Name}
	for _, p := range j.Pages {
		out.Pages = append(out.Pages, renderedPage{
			ID:      p.ID,
			Name:    p.Name,
			Content: markup.Transform(p.Text.Content, ctx),
		})
	}
	return out
}

func formatRenderedText(r *renderedJournal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s\n", r.Journal)
	for _, p := range r.Pages {
		fmt.Fprintf(&b, "\n-- %s\n%s\n", p.Name, p.Content)
	}
	return b.String()
}

// validateInput schema-validates a supporting input file (language or
// world). Any problem with them is an input error, never a finding.
func validateInput(v *schema.Validator, kind, path string) int {
	errs := v.Validate(kind, path)
	for _, se := range errs {
		fmt.Fprintf(os.Stderr, "Error: %s: %s\n", path, se)
	}
	if len(errs) > 0 {
		return 2
	}
	return 0
}

// splitRules parses a comma-separated rule name list.
func splitRules(s string) []string {
	var rules []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			rules = append(rules, part)
		}
	}
	return rules
}

// setupLogging installs a tinted debug handler when verbose is set and
// discards logs otherwise.
func setupLogging(verbose bool) {
	if !verbose {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug})))
}
