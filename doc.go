// Package cashflow models annual cash flow series such as bond coupons, dividend
// streams or blends of them, and values and compares them.
//
// The core functionalities include:
//   - Construction: raw dated amounts are summed per calendar year and dated on the
//     31st of December. Entries before the origin (time zero, 2013-12-30 by default)
//     are discarded.
//   - Valuation: NPV at a fixed discount rate, where the first annual entry is the
//     time zero flow and is not discounted.
//   - Arithmetic: Add, Multiply and Divide by a scalar or another CashFlow, Negate,
//     and weighted blends of named cash flows (FromWeighted).
//   - Comparison: StructuralMatch, ApproxEqual (every ratio within a tolerance band)
//     and ScaleEquivalent (all ratios close to a single scale factor). Comparisons
//     return a Verdict that carries the reason of a mismatch.
//
// Each CashFlow carries its own Config (origin, discount rate, equality threshold),
// resolved at construction from DefaultConfig and options.
//
// This package serves as the foundational logic for the `cfx` command-line tool.
package cashflow
