// Package portfolio blends named cash flows with weights.
package portfolio

import (
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/cashflow"
)

// Holding is a named cash flow with its weight in a Portfolio.
type Holding struct {
	Name     string
	CashFlow *cashflow.CashFlow
	Weight   float64
}

// Portfolio is a set of holdings.
type Portfolio struct {
	holdings map[string]Holding
}

// New returns an empty Portfolio.
func New() *Portfolio { return &Portfolio{holdings: make(map[string]Holding)} }

// Add adds a holding. Names are unique.
func (p *Portfolio) Add(name string, cf *cashflow.CashFlow, weight float64) error {
	if name == "" {
		return fmt.Errorf("invalid holding: empty name")
	}
	if cf == nil {
		return fmt.Errorf("invalid holding %q: no cash flow", name)
	}
	if _, exists := p.holdings[name]; exists {
		return fmt.Errorf("holding %q is already defined", name)
	}
	p.holdings[name] = Holding{Name: name, CashFlow: cf, Weight: weight}
	return nil
}

// Names returns the holding names in alphabetical order.
func (p *Portfolio) Names() []string { return slices.Sorted(maps.Keys(p.holdings)) }

// Holding returns the holding with that name.
func (p *Portfolio) Holding(name string) (Holding, bool) {
	h, ok := p.holdings[name]
	return h, ok
}

// Holdings returns the holdings in alphabetical order.
func (p *Portfolio) Holdings() []Holding {
	list := make([]Holding, 0, len(p.holdings))
	for _, name := range p.Names() {
		list = append(list, p.holdings[name])
	}
	return list
}

// TotalWeight returns the sum of the weights.
func (p *Portfolio) TotalWeight() float64 {
	total := 0.0
	for _, h := range p.Holdings() {
		total += h.Weight
	}
	return total
}

// Blend returns the weighted sum of the holdings' cash flows.
func (p *Portfolio) Blend(opts ...cashflow.Option) (*cashflow.CashFlow, error) {
	named := make(map[string]*cashflow.CashFlow, len(p.holdings))
	weights := make(map[string]float64, len(p.holdings))
	for name, h := range p.holdings {
		named[name], weights[name] = h.CashFlow, h.Weight
	}
	return cashflow.FromWeighted(named, weights, opts...)
}
