// Command typeduuidgen generates typed UUID kinds from a kinds document.
//
// Usage:
//
//	//go:generate go run github.com/syssam/typeduuid/cmd/typeduuidgen kinds.yaml
//
// For every config file, typeduuidgen writes <config base>_gen.go next to it,
// in the package named by $GOPACKAGE (set by go generate) or -pkg. Invalid
// kinds are reported and left out; the remaining kinds are still written and
// the command exits with status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/typeduuid/compiler/gen"
	"github.com/syssam/typeduuid/compiler/load"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	pkg     string
	out     string
	header  string
	json    bool
	watch   bool
	verbose bool
	configs []string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("typeduuidgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pkg, "pkg", "", "package name of the generated code (default $GOPACKAGE or the output directory name)")
	fs.StringVar(&opts.out, "out", "", "output file (default <config base>_gen.go, only with a single config)")
	fs.StringVar(&opts.header, "header", gen.DefaultHeader, "header comment of generated files")
	fs.BoolVar(&opts.json, "json", false, "print diagnostics as JSON lines on stdout")
	fs.BoolVar(&opts.watch, "watch", false, "regenerate when a config file changes")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logs")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: typeduuidgen [flags] config.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	opts.configs = fs.Args()
	if len(opts.configs) == 0 {
		fs.Usage()
		return 2
	}
	if opts.out != "" && len(opts.configs) > 1 {
		fmt.Fprintln(stderr, "typeduuidgen: -out requires a single config file")
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	r := &runner{
		opts:   opts,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		report: &reporter{w: stderr, json: opts.json, stdout: stdout},
	}

	err := r.generateAll()
	if opts.watch {
		if err := r.watch(ctx); err != nil {
			r.logger.Error("watch failed", "error", err)
			return 1
		}
		return 0
	}
	if err != nil {
		return 1
	}
	return 0
}

type runner struct {
	opts   options
	logger *slog.Logger
	report *reporter
}

// generateAll runs every config concurrently. Each config is an independent
// run, so one failing config does not stop the others.
func (r *runner) generateAll() error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range r.opts.configs {
		path := path
		g.Go(func() error {
			return r.generate(path)
		})
	}
	return g.Wait()
}

// generate runs one config and writes its output, including the output of a
// partially valid document.
func (r *runner) generate(path string) error {
	cfg, err := r.config(path)
	if err != nil {
		r.logger.Error("invalid options", "config", path, "error", err)
		return err
	}
	out, err := gen.GenerateFile(cfg, path)
	if err != nil {
		var pe *load.ParseError
		if errors.As(err, &pe) {
			r.report.structural(path, pe)
		} else {
			r.logger.Error("generation failed", "config", path, "error", err)
		}
		return err
	}
	if err := out.Write(); err != nil {
		r.logger.Error("write failed", "config", path, "error", err)
		return err
	}
	r.report.diagnostics(path, out.Diagnostics)
	r.logger.Debug("generated", "config", path, "kinds", len(out.Kinds), "files", len(out.Files), "diagnostics", len(out.Diagnostics))
	return out.Err()
}

func (r *runner) config(path string) (*gen.Config, error) {
	target := r.opts.out
	if target == "" {
		target = strings.TrimSuffix(path, filepath.Ext(path)) + "_gen.go"
	}
	pkg := r.opts.pkg
	if pkg == "" {
		pkg = os.Getenv("GOPACKAGE")
	}
	if pkg == "" {
		var err error
		if pkg, err = packageName(target); err != nil {
			return nil, err
		}
	}
	cfg, err := gen.NewConfig()
	if err != nil {
		return nil, err
	}
	// Report every bad option of this run, not only the first.
	if err := cfg.ApplyAll(gen.WithPackage(pkg), gen.WithTarget(target), gen.WithHeader(r.opts.header)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// packageName derives a package name from the directory of target.
func packageName(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	dir := filepath.Base(filepath.Dir(abs))
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		case r == '-', r == '.':
			return '_'
		}
		return -1
	}, dir)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return "", fmt.Errorf("cannot derive a package name from directory %q, use -pkg", dir)
	}
	return name, nil
}

// watch regenerates a config whenever it changes, until ctx is done.
func (r *runner) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	configs := make(map[string]string, len(r.opts.configs))
	for _, path := range r.opts.configs {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		configs[abs] = path
		// Watch the directory, editors replace files on save.
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}
	r.logger.Info("watching", "configs", len(configs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			path, known := configs[filepath.Clean(event.Name)]
			if !known || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.logger.Debug("config changed", "config", path, "op", event.Op.String())
			if err := r.generate(path); err == nil {
				r.logger.Info("regenerated", "config", path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", "error", err)
		}
	}
}

// reporter prints diagnostics, one per line, in text or JSON form.
type reporter struct {
	mu     sync.Mutex
	w      io.Writer
	stdout io.Writer
	json   bool
}

type jsonDiagnostic struct {
	Config   string       `json:"config"`
	Pos      load.Pos     `json:"pos"`
	Severity gen.Severity `json:"severity"`
	Message  string       `json:"message"`
	Hint     string       `json:"hint,omitempty"`
}

func (p *reporter) structural(config string, err *load.ParseError) {
	p.diagnostics(config, []*gen.Diagnostic{{Pos: err.Pos, Severity: gen.SeverityError, Message: err.Message}})
}

func (p *reporter) diagnostics(config string, diags []*gen.Diagnostic) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.json {
		enc := json.NewEncoder(p.stdout)
		for _, d := range diags {
			_ = enc.Encode(jsonDiagnostic{
				Config:   config,
				Pos:      d.Pos,
				Severity: d.Severity,
				Message:  d.Message,
				Hint:     d.Hint,
			})
		}
		return
	}
	for _, d := range diags {
		fmt.Fprintf(p.w, "%s: %s: %s\n", d.Pos, d.Severity, d.Message)
		if d.Hint != "" {
			fmt.Fprintf(p.w, "\thint: %s\n", d.Hint)
		}
	}
}
