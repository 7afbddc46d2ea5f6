package position

import "fmt"

// N returns count positions that sort strictly between start and end, in
// increasing order and spread as evenly as the alphabet allows. Empty bounds
// are open, as in Between.
//
// The first 25 positions take one digit each. Beyond that the surplus is
// shared out between the gaps, lowest gaps first, and filled recursively one
// digit deeper. The output is deterministic: only the blocklist option is
// honoured, interpolation options are ignored.
func N(count int, start, end string, opts ...Option) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d must not be negative", ErrInvalidArguments, count)
	}
	if err := checkBounds(start, end); err != nil {
		return nil, err
	}
	return spread(newConfig(opts).blocked, count, start, end)
}

func spread(blocked Blocklist, count int, start, end string) ([]string, error) {
	out := make([]string, 0, count)
	prev := start

	for index := range min(digits, count) {
		hasNext := index < digits-1

		var next string
		if hasNext {
			step := &config{
				factor:  1 / float64(min(digits-1, count)-index+1),
				blocked: blocked,
			}
			var err error
			if next, err = step.between(prev, end, ""); err != nil {
				return nil, err
			}
		}

		if count >= digits {
			surplus := count - (digits - 1)
			extra := surplus / digits
			if index < surplus%digits {
				extra++
			}

			upper := end
			if hasNext {
				upper = next
			}
			sub, err := spread(blocked, extra, prev, upper)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}

		if hasNext {
			out = append(out, next)
			prev = next
		}
	}

	return out, nil
}
