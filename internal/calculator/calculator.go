// Package calculator holds the lead-generation ROI calculator.
package calculator

import "hypertech.group/hypersystem-web/internal/uistate"

// Results is what the result panel displays once a diagnosis has run.
type Results struct {
	Hours  int
	Risk   string
	Growth string
	Money  int64
}

// RiskHigh is the only risk level the estimate reports.
const RiskHigh = "High"

// Estimate returns the marketing estimate. The figures are fixed and do not
// depend on the selection.
func Estimate(_ uistate.Set) Results {
	return Results{
		Hours:  120,
		Risk:   RiskHigh,
		Growth: "+25%",
		Money:  450000,
	}
}

// State is the calculator as described by a query string.
type State struct {
	Pains uistate.Set
	Ran   bool
}

// ParseState reads "pains" and "run" values for a list of count pain points.
func ParseState(pains, run string, count int) State {
	return State{
		Pains: uistate.ParseSet(pains, count),
		Ran:   uistate.Flag(run),
	}
}

// Results returns the estimate once the diagnosis has run.
func (s State) Results() (Results, bool) {
	if !s.Ran {
		return Results{}, false
	}
	return Estimate(s.Pains), true
}
