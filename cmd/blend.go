package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/etnz/cashflow/portfolio"
	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

// blendCmd holds the flags for the 'blend' subcommand.
type blendCmd struct {
	configFlags
	file string
}

func (*blendCmd) Name() string     { return "blend" }
func (*blendCmd) Synopsis() string { return "blend the weighted holdings of a portfolio into one cash flow" }
func (*blendCmd) Usage() string {
	return `cfx blend -p <portfolio.json> [-origin <date>] [-rate <rate>]

  Reads a portfolio of weighted holdings, each one a list of flows, a dividend or a
  coupon, and prints the weighted sum of their cash flows.
`
}

func (c *blendCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.file, "p", "", "Portfolio JSON file")
}

func (c *blendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -p flag is required")
		return subcommands.ExitUsageError
	}
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()
	p, err := portfolio.Decode(r, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding portfolio %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if total := p.TotalWeight(); *Verbose && math.Abs(total-1) > 1e-9 {
		log.Printf("warning, weights of %q sum up to %v", c.file, total)
	}

	blended, err := p.Blend(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error blending portfolio %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderBlend(renderer.NewBlendReport(p, blended, *defaultCurrency)))
	return subcommands.ExitSuccess
}
