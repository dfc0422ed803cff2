package markov

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrEmptyMatrix indicates a transition matrix without rows.
	ErrEmptyMatrix = errors.New("markov: transition matrix is empty")

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("markov: transition matrix is not square")

	// ErrNegativeCount indicates a negative transition count.
	ErrNegativeCount = errors.New("markov: negative transition count")

	// ErrNoAbsorption indicates that I − Q is singular: a closed set of
	// non-terminal states exists from which no terminal is reachable.
	ErrNoAbsorption = errors.New("markov: chain is not absorbing")

	// ErrOverflow indicates a numerator or denominator beyond int64.
	ErrOverflow = errors.New("markov: value overflows int64")
)

// Distribution is the probability of ending in each terminal state when
// starting from state 0. Slices follow the terminals in their original order.
type Distribution struct {
	// Terminals lists the original indices of the terminal states.
	Terminals []int
	// Probabilities[k] is the chance of absorption in Terminals[k].
	Probabilities []*big.Rat
	// Numerators[k]/Denominator == Probabilities[k].
	Numerators []*big.Int
	// Denominator is the least common multiple of all probability denominators.
	Denominator *big.Int
	// StartTerminal reports that state 0 is itself terminal.
	StartTerminal bool
}

// Ints returns the numerators followed by the common denominator.
// When the start state is terminal the result is the fixed pair [1, 1].
func (d *Distribution) Ints() ([]int64, error) {
	if d.StartTerminal {
		return []int64{1, 1}, nil
	}
	out := make([]int64, 0, len(d.Numerators)+1)
	for i, num := range d.Numerators {
		if !num.IsInt64() {
			return nil, fmt.Errorf("markov: numerator %d (%s): %w", i, num, ErrOverflow)
		}
		out = append(out, num.Int64())
	}
	if !d.Denominator.IsInt64() {
		return nil, fmt.Errorf("markov: denominator %s: %w", d.Denominator, ErrOverflow)
	}

	return append(out, d.Denominator.Int64()), nil
}

// String renders the distribution as "n0/d n1/d ...".
func (d *Distribution) String() string {
	var sb strings.Builder
	for i, num := range d.Numerators {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num.String())
		sb.WriteByte('/')
		sb.WriteString(d.Denominator.String())
	}

	return sb.String()
}
