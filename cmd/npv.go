package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

// npvCmd holds the flags for the 'npv' subcommand.
type npvCmd struct {
	configFlags
	file string
	path string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "value a cash flow file at a discount rate" }
func (*npvCmd) Usage() string {
	return `cfx npv -f <file> [-path <jsonpath>] [-origin <date>] [-rate <rate>]

  Reads dated amounts from a JSON file, sums them per calendar year and prints
  each annual amount with its present value and the net present value.
`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.file, "f", "", "JSON file containing a list of {\"date\", \"amount\"} objects")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting the list inside the file")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required")
		return subcommands.ExitUsageError
	}
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cf, err := decodeCashFlow(c.file, c.path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cash flow %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	report := renderer.NewCashFlowReport(c.file, cf, *defaultCurrency)
	printMarkdown(renderer.RenderCashFlow(report))
	return subcommands.ExitSuccess
}
