package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	configFlags
	a, b string
	path string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two cash flow files within a threshold" }
func (*compareCmd) Usage() string {
	return `cfx compare -a <file> -b <file> [-path <jsonpath>] [-threshold <t>] [-origin <date>]

  Checks that both cash flows cover the same years, then whether they are
  approximately equal and whether one is approximately a multiple of the other.
  The exit status is a failure only when a file cannot be read.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.a, "a", "", "First cash flow file")
	f.StringVar(&c.b, "b", "", "Second cash flow file")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting the list inside both files")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.a == "" || c.b == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -b flags are required")
		return subcommands.ExitUsageError
	}
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := decodeCashFlow(c.a, c.path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cash flow %q: %v\n", c.a, err)
		return subcommands.ExitFailure
	}
	b, err := decodeCashFlow(c.b, c.path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cash flow %q: %v\n", c.b, err)
		return subcommands.ExitFailure
	}

	report := renderer.NewComparisonReport(c.a, a, c.b, b, *defaultCurrency)
	printMarkdown(renderer.RenderComparison(report))
	return subcommands.ExitSuccess
}
