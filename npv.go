package cashflow

// NPV returns the net present value of c at its discount rate.
//
// The first entry is time zero and is never discounted; each later entry is
// discounted once more than the previous one. The sum is accumulated from the last
// entry backward:
//
//	acc = 0
//	for i = n-1 .. 1: acc = (acc + cf[i]) / (1 + rate)
//	npv = acc + cf[0]
//
// A single entry series is worth its only amount.
func (c *CashFlow) NPV() (float64, error) {
	amounts := c.series().Amounts()
	if len(amounts) == 0 {
		return 0, ErrEmptySeries
	}
	acc := 0.0
	for i := len(amounts) - 1; i > 0; i-- {
		acc = (acc + amounts[i]) / (1 + c.cfg.Rate)
	}
	return acc + amounts[0], nil
}
