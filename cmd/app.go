// Package cmd implements the cfx command line application to value and compare annual cash flows.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&npvCmd{}, "cash flows")
	c.Register(&compareCmd{}, "cash flows")
	c.Register(&blendCmd{}, "cash flows")
	c.Register(&scheduleCmd{}, "instruments")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", envOr(EnvDefaultCurrency, "EUR"), "Currency used to display amounts")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal")

// Verbose enables warnings about inputs that are silently accepted.
var Verbose = flag.Bool("v", false, "Verbose output")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printMarkdown prints md to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// configFlags are the flags shared by commands building a CashFlow.
type configFlags struct {
	origin    string
	rate      float64
	threshold float64
}

func (c *configFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.origin, "origin", cashflow.DefaultOrigin().String(), "Time zero: entries dated before are dropped")
	f.Float64Var(&c.rate, "rate", cashflow.DefaultRate, "Annual discount rate, as a fraction (0.1 is 10%)")
	f.Float64Var(&c.threshold, "threshold", cashflow.DefaultThreshold, "Relative tolerance of comparisons, as a fraction")
}

// options converts the flags into cashflow options.
func (c *configFlags) options() ([]cashflow.Option, error) {
	origin, err := date.Parse(c.origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", c.origin, err)
	}
	cfg := cashflow.Config{Origin: origin, Rate: c.rate, Threshold: c.threshold}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return []cashflow.Option{cashflow.WithConfig(cfg)}, nil
}

// decodeCashFlow reads a schedule file and builds its CashFlow.
func decodeCashFlow(filename, path string, opts []cashflow.Option) (*cashflow.CashFlow, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	days, amounts, err := cashflow.DecodeSchedule(f, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", filename, err)
	}
	if *Verbose && len(days) > 0 {
		log.Printf("%s: %d dated amounts from %v to %v", filename, len(days), days[0], days[len(days)-1])
	}
	return cashflow.New(days, amounts, opts...)
}
