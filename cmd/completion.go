package cmd

import (
	"github.com/etnz/cashflow/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the cfx command line for shell completion.
//
// A main package calls Completion().Complete(name) before parsing flags: it does
// nothing unless the shell is asking for completions.
func Completion() *complete.Command {
	jsonFiles := predict.Files("*.json")
	config := map[string]complete.Predictor{
		"origin":    predict.Something,
		"rate":      predict.Something,
		"threshold": predict.Something,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range config {
			flags[k] = v
		}
		return flags
	}

	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"EUR", "USD", "GBP", "JPY", "CHF"},
			"raw":      predict.Nothing,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"npv": {Flags: with(map[string]complete.Predictor{
				"f":    jsonFiles,
				"path": predict.Something,
			})},
			"compare": {Flags: with(map[string]complete.Predictor{
				"a":    jsonFiles,
				"b":    jsonFiles,
				"path": predict.Something,
			})},
			"blend": {Flags: with(map[string]complete.Predictor{
				"p": jsonFiles,
			})},
			"schedule": {Flags: map[string]complete.Predictor{
				"kind":     predict.Set{"dividend", "coupon"},
				"origin":   predict.Something,
				"r":        predict.Something,
				"scale":    predict.Something,
				"years":    predict.Something,
				"maturity": predict.Something,
				"per-year": predict.Set{"1", "2", "3", "4", "6", "12"},
			}},
			"topic": {Args: predict.Set(append([]string{"readme", "*"}, topics...))},
			"help":  {},
		},
	}
}
