// strongcheck reports whether values are valid instances of a catalog kind.
//
//	strongcheck --kind email ada@example.com not-an-email
//	printf '1\n7\n' | strongcheck -k priority -f json
//	strongcheck --list
//
// Values come from the arguments, or one per line from stdin when there are
// none. The exit status is 1 when any value is invalid and 2 on usage or
// configuration errors.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/authcorp/strongtypes/codec"
	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/internal/config"
	"github.com/authcorp/strongtypes/strong"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// Result is the outcome of checking one value.
type Result struct {
	Input     string `json:"input" yaml:"input"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the structured output for json and yaml formats.
type Report struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Valid   int      `json:"valid" yaml:"valid"`
	Invalid int      `json:"invalid" yaml:"invalid"`
	Results []Result `json:"results" yaml:"results"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("strongcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	list := fs.BoolP("list", "l", false, "list catalog kinds and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	logger := cfg.Logging.NewLogger(stderr)
	strong.SetLogger(logger)
	defer strong.SetLogger(nil)

	if *list {
		if err := writeKinds(stdout, cfg.Check.Format, domain.Kinds()); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		return exitOK
	}

	kind, ok := domain.Lookup(cfg.Check.Kind)
	if !ok {
		fmt.Fprintf(stderr, "error: unknown kind %q (see --list)\n", cfg.Check.Kind)
		return exitUsage
	}

	values := fs.Args()
	if len(values) == 0 {
		values, err = readLines(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: read stdin: %v\n", err)
			return exitUsage
		}
	}

	report := check(kind, values)
	logger.Info("checked values", "kind", kind.Name, "valid", report.Valid, "invalid", report.Invalid)

	if err := writeReport(stdout, cfg.Check.Format, report); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if report.Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func check(kind domain.Kind, values []string) Report {
	report := Report{Kind: kind.Name, Results: make([]Result, 0, len(values))}
	for _, v := range values {
		canonical, err := kind.Check(v)
		if err != nil {
			report.Invalid++
			report.Results = append(report.Results, Result{Input: v, Error: err.Error()})
			continue
		}
		report.Valid++
		report.Results = append(report.Results, Result{Input: v, Valid: true, Canonical: canonical})
	}
	return report
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func writeReport(w io.Writer, format string, report Report) error {
	if format == "text" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range report.Results {
			if r.Valid {
				fmt.Fprintf(tw, "valid\t%s\t%s\n", r.Input, r.Canonical)
			} else {
				fmt.Fprintf(tw, "invalid\t%s\t%s\n", r.Input, r.Error)
			}
		}
		return tw.Flush()
	}
	return encode(w, format, report)
}

func writeKinds(w io.Writer, format string, kinds []domain.Kind) error {
	if format == "text" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, k := range kinds {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Name, k.Primitive, k.Description)
		}
		return tw.Flush()
	}
	return encode(w, format, kinds)
}

func encode(w io.Writer, format string, v any) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	data, err := c.Encode(v)
	if err != nil {
		return err
	}
	if format == codec.FormatJSON {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
