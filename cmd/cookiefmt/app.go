package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/setcookie/pkg/cookie"
	"github.com/dmitrymomot/setcookie/pkg/logger"
)

const (
	outputHeader = "header"
	outputYAML   = "yaml"
)

var errInvalidOutput = errors.New("cookiefmt.invalid_output")

type appConfig struct {
	Output    string `env:"COOKIEFMT_OUTPUT" envDefault:"header"`
	Escape    bool   `env:"COOKIEFMT_ESCAPE" envDefault:"false"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Defaults  bool   `env:"COOKIEFMT_DEFAULTS" envDefault:"false"`

	// Cookie holds the attributes filled in by -defaults (COOKIE_* variables).
	Cookie cookie.Config
}

type options struct {
	output    string
	escape    bool
	permanent bool
	removal   bool
	defaults  []cookie.Option
}

// run returns the process exit code: 0 on success, 1 when a line was
// rejected, 2 on usage errors.
func run(cfg appConfig, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("cookiefmt", flag.ContinueOnError)
	fs.SetOutput(errOut)

	opts := options{}
	fs.StringVar(&opts.output, "output", cfg.Output, "output format: header or yaml")
	fs.BoolVar(&opts.escape, "escape", cfg.Escape, "percent-encode cookie name and value")
	fs.BoolVar(&opts.permanent, "permanent", false, "make every cookie permanent")
	fs.BoolVar(&opts.removal, "removal", false, "turn every cookie into a removal cookie")
	applyDefaults := fs.Bool("defaults", cfg.Defaults, "fill unset attributes from COOKIE_* settings")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(cfg, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "cookiefmt: %v\n", err)
		return 2
	}

	if opts.output != outputHeader && opts.output != outputYAML {
		log.Error("invalid flags", logger.Error(fmt.Errorf("%w: %q", errInvalidOutput, opts.output)))
		return 2
	}
	if opts.permanent && opts.removal {
		log.Error("invalid flags", slog.String("reason", "-permanent and -removal are exclusive"))
		return 2
	}
	if *applyDefaults {
		defaults, err := cfg.Cookie.Options()
		if err != nil {
			log.Error("invalid cookie defaults", logger.Error(err))
			return 2
		}
		opts.defaults = defaults
	}

	failed, err := process(log, opts, in, out)
	if err != nil {
		log.Error("processing aborted", logger.Error(err))
		return 1
	}
	if failed > 0 {
		log.Warn("some lines were rejected", slog.Int("rejected", failed))
		return 1
	}
	return 0
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(strings.ToLower(cfg.LogFormat))
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("cookiefmt")),
	), nil
}

// process handles every non-blank input line and returns how many were
// rejected. Only I/O failures are returned as errors.
func process(log *slog.Logger, opts options, in io.Reader, out io.Writer) (int, error) {
	parse := cookie.Parse
	if opts.escape {
		parse = cookie.ParseEscaped
	}

	var enc *yaml.Encoder
	if opts.output == outputYAML {
		enc = yaml.NewEncoder(out)
		enc.SetIndent(2)
	}

	failed := 0
	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := parse(line)
		if err != nil {
			failed++
			log.Error("rejected line", logger.Line(n), logger.Input(line), logger.Error(err))
			continue
		}

		c.ApplyDefaults(opts.defaults...)
		switch {
		case opts.permanent:
			c.MakePermanent()
		case opts.removal:
			c.MakeRemoval()
		}
		log.Debug("parsed cookie", logger.Line(n), logger.CookieName(c.Name))

		if enc != nil {
			if err := enc.Encode(newRecord(c)); err != nil {
				return failed, fmt.Errorf("encode line %d: %w", n, err)
			}
			continue
		}
		if _, err := fmt.Fprintln(out, c.String()); err != nil {
			return failed, fmt.Errorf("write line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read input: %w", err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return failed, fmt.Errorf("flush yaml: %w", err)
		}
	}

	return failed, nil
}
