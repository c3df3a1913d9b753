/*
analyze.go - One-call engine boundary

PURPOSE:
  Runs the whole pipeline for a scenario: schedule, first-month cost
  breakdown, both rent-vs-buy series pairs, resale impact, and the
  refinance comparison when configured. This is the boundary the serving
  and report layers consume.

  Analyze is a pure function of its input: no hidden state, no I/O, safe
  to invoke from any number of concurrent request handlers.
*/
package mortgage

// Analyze validates the scenario and computes every output structure.
// Either the complete analysis is returned or an error; never a partial.
func Analyze(s Scenario) (*Analysis, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sched, err := Amortize(s)
	if err != nil {
		return nil, err
	}

	first, err := MonthlyCost(s, sched, 1)
	if err != nil {
		return nil, err
	}

	rentBuy, err := CompareRentBuy(s, sched)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Scenario:   s,
		Schedule:   sched,
		FirstMonth: first,
		RentBuy:    rentBuy,
	}

	if s.Resale != nil {
		a.Resale, err = ResaleOutcome(s, sched)
		if err != nil {
			return nil, err
		}
	}

	if s.Refinance != nil {
		a.Refinance, err = CompareRefinance(s)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}
