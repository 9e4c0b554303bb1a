package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/date"
	"github.com/etnz/cashflow/instrument"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	kind     string
	origin   string
	rate     float64
	scale    float64
	years    int
	maturity string
	perYear  int
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the annual cash flow of a dividend or a coupon bond" }
func (*scheduleCmd) Usage() string {
	return `cfx schedule -kind dividend -r <rate> -scale <scale> [-years <n>] [-origin <date>]
cfx schedule -kind coupon -r <rate> -scale <scale> -maturity <date> [-per-year <n>] [-origin <date>]

  Prints the annual flows of the instrument as a JSON list that 'cfx npv' can read.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "dividend", "Instrument kind: dividend or coupon")
	f.StringVar(&c.origin, "origin", cashflow.DefaultOrigin().String(), "Time zero: entries dated before are dropped")
	f.Float64Var(&c.rate, "r", 0, "Rate paid per period, as a fraction of the scale")
	f.Float64Var(&c.scale, "scale", 1, "Principal amount")
	f.IntVar(&c.years, "years", instrument.DefaultYears, "Number of annual dividends")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date of the coupon bond")
	f.IntVar(&c.perYear, "per-year", 2, "Number of coupons a year, must divide 12")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	origin, err := date.Parse(c.origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing origin %q: %v\n", c.origin, err)
		return subcommands.ExitUsageError
	}
	opts := []cashflow.Option{cashflow.WithOrigin(origin)}

	var cf *cashflow.CashFlow
	switch c.kind {
	case "dividend":
		cf, err = instrument.NewDividend(c.rate, c.scale, c.years, opts...)
	case "coupon":
		if c.maturity == "" {
			fmt.Fprintln(os.Stderr, "Error: -maturity flag is required for a coupon")
			return subcommands.ExitUsageError
		}
		maturity, perr := date.Parse(c.maturity)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error parsing maturity %q: %v\n", c.maturity, perr)
			return subcommands.ExitUsageError
		}
		cf, err = instrument.NewCoupon(c.rate, maturity, c.perYear, c.scale, opts...)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown instrument kind %q, want dividend or coupon\n", c.kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building %s schedule: %v\n", c.kind, err)
		return subcommands.ExitFailure
	}

	if err := cashflow.EncodeSchedule(os.Stdout, cf); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schedule: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
