// Command depcheck validates candidates against the kinds of a YAML catalog.
//
// In batch mode it reads stdin one candidate per line. Each line is
// "name candidate" (separated by the first tab, or else the first space), or just
// the candidate when DEPCHECK_KIND names the kind for every line. Each result is
// printed as
//
//	name<TAB>candidate<TAB>ok<TAB>normalized
//	name<TAB>candidate<TAB>rejected
//
// A line with a name but no candidate is reported as rejected with an empty
// candidate column.
//
// The exit status is 0 when every candidate was accepted, 1 when any was rejected
// or named an unknown kind, and 2 when depcheck could not run at all.
//
// With DEPCHECK_INTERACTIVE set it instead prompts for a kind and a candidate,
// refusing input until the chosen kind accepts it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/amp-labs/amp-dependent/catalog"
	"github.com/amp-labs/amp-dependent/cli"
	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
	"github.com/amp-labs/amp-dependent/validator"
	"github.com/manifoldco/promptui"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK = iota
	exitRejected
	exitFailure
)

const (
	statusOK       = "ok"
	statusRejected = "rejected"
	statusUnknown  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr, cli.Terminal{})

	stop()
	os.Exit(code)
}

// run is the whole command. Batch modes read stdin; interactive mode asks term.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, term cli.Prompter) int {
	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "depcheck:", err)

		return exitFailure
	}

	level, err := cfg.level()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "depcheck:", err)

		return exitFailure
	}

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "depcheck",
		JSON:      cfg.LogJSON,
		MinLevel:  level,
		Output:    stderr,
	})
	ctx = logger.WithLogger(ctx, log)

	code, err := check(ctx, cfg, stdin, stdout, term)
	if err != nil {
		log.Error("depcheck failed", "error", err)

		return exitFailure
	}

	return code
}

func check(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, term cli.Prompter) (int, error) {
	registry := prometheus.NewRegistry()

	metrics, err := validator.NewMetrics(registry)
	if err != nil {
		return exitFailure, err
	}

	cat, err := catalog.LoadFile(ctx, cfg.Catalog, catalog.WithMetrics(metrics))
	if err != nil {
		return exitFailure, err
	}

	logger.Get(ctx).Info("catalog loaded", "path", cfg.Catalog, "kinds", len(cat.Names()))

	var code int

	switch {
	case cfg.Interactive:
		code, err = interactive(ctx, cat, term, stdout)
	case cfg.Kind != "":
		code, err = batchOneKind(ctx, cat, cfg, stdin, stdout)
	default:
		code, err = batch(ctx, cat, stdin, stdout)
	}

	if err != nil {
		return exitFailure, err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			return exitFailure, fmt.Errorf("writing metrics: %w", err)
		}
	}

	return code, nil
}

func printResult(w io.Writer, r catalog.Result) error {
	var err error

	if wrapper, ok := r.Wrapper().Get(); ok {
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Candidate(), statusOK, wrapper.Value())
	} else {
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Candidate(), statusRejected)
	}

	return err
}

// splitLine separates the kind name from the candidate. After a tab the
// candidate is taken verbatim; after a space the run of spaces is dropped.
func splitLine(line string) (string, string, bool) {
	if name, candidate, ok := strings.Cut(line, "\t"); ok {
		return strings.TrimSpace(name), candidate, true
	}

	name, candidate, ok := strings.Cut(strings.TrimSpace(line), " ")

	return name, strings.TrimSpace(candidate), ok
}

func batch(ctx context.Context, cat *catalog.Catalog, stdin io.Reader, stdout io.Writer) (int, error) {
	code := exitOK
	scanner := bufio.NewScanner(stdin)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return exitFailure, err
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, candidate, ok := splitLine(line)
		if !ok {
			logger.Get(ctx).Warn("line has no candidate", "line", lineNo, "name", name)

			// Still one row per line so output lines up with input.
			if _, err := fmt.Fprintf(stdout, "%s\t\t%s\n", name, statusRejected); err != nil {
				return exitFailure, err
			}

			code = exitRejected

			continue
		}

		result, err := cat.Check(name, candidate)
		if err != nil {
			if !errors.Is(err, errors.ErrUnknownKind) {
				return exitFailure, err
			}

			logger.Get(ctx).Warn("unknown kind", "line", lineNo, "name", name)

			if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, candidate, statusUnknown); err != nil {
				return exitFailure, err
			}

			code = exitRejected

			continue
		}

		if !result.Valid() {
			code = exitRejected
		}

		if err := printResult(stdout, result); err != nil {
			return exitFailure, err
		}
	}

	if err := scanner.Err(); err != nil {
		return exitFailure, fmt.Errorf("reading input: %w", err)
	}

	return code, nil
}

func batchOneKind(ctx context.Context, cat *catalog.Catalog, cfg config, stdin io.Reader, stdout io.Writer) (int, error) {
	var candidates []string

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			candidates = append(candidates, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return exitFailure, fmt.Errorf("reading input: %w", err)
	}

	results, err := cat.CheckAll(ctx, cfg.Kind, candidates, cfg.Workers)
	if err != nil {
		return exitFailure, err
	}

	code := exitOK

	for _, r := range results {
		if !r.Valid() {
			code = exitRejected
		}

		if err := printResult(stdout, r); err != nil {
			return exitFailure, err
		}
	}

	return code, nil
}

func interactive(ctx context.Context, cat *catalog.Catalog, term cli.Prompter, stdout io.Writer) (int, error) {
	names := cat.Names()
	if len(names) == 0 {
		return exitFailure, fmt.Errorf("%w: catalog is empty", errors.ErrUnknownKind)
	}

	_, _ = fmt.Fprintln(stdout, cli.Banner("depcheck\n"+strings.Join(names, ", "), cli.DefaultTerminalWidth, cli.AlignCenter))

	for {
		name, err := term.Select("Kind", names...)
		if err != nil {
			return interrupted(err)
		}

		factory, _ := cat.Factory(name)

		value, err := cli.PromptValidated(term, name, factory)
		if err != nil {
			return interrupted(err)
		}

		logger.Get(ctx).Debug("accepted", "name", name)

		_, _ = fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, statusOK, value.Value())

		again, err := term.Confirm("Check another")
		if err != nil {
			return interrupted(err)
		}

		if !again {
			return exitOK, nil
		}
	}
}

// interrupted treats Ctrl-C and Ctrl-D at a prompt as a normal way to leave.
func interrupted(err error) (int, error) {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return exitOK, nil
	}

	return exitFailure, err
}
