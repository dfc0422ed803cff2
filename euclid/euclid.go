// Package euclid counts replication generations.
//
// Two populations start at (1, 1). In each generation one population grows by
// the size of the other: (m, f) becomes (m+f, f) or (m, m+f). Going backwards
// the larger value must have come from subtracting the smaller one, so the
// path from (1, 1) is unique when it exists. Runs of identical subtractions are
// taken as one division, as in Euclid's algorithm.
package euclid

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrImpossible indicates a pair that cannot be reached from (1, 1).
	ErrImpossible = errors.New("euclid: impossible")
	// ErrNonPositive indicates a value below 1.
	ErrNonPositive = errors.New("euclid: values must be positive")
	// ErrParse indicates a string that is not a decimal integer.
	ErrParse = errors.New("euclid: not a decimal integer")
)

// Generations returns the number of generations needed to reach (m, f).
// Returns ErrImpossible when the pair is unreachable, which is the case
// exactly when gcd(m, f) > 1. The arguments are not modified.
// Complexity: O(log max(m, f)) big-integer divisions.
func Generations(m, f *big.Int) (*big.Int, error) {
	if m == nil || f == nil || m.Sign() <= 0 || f.Sign() <= 0 {
		return nil, ErrNonPositive
	}
	a, b := new(big.Int).Set(m), new(big.Int).Set(f)
	one := big.NewInt(1)
	count := new(big.Int)
	q, r := new(big.Int), new(big.Int)
	for {
		// one side is 1: the other side is reached by that many additions
		if a.Cmp(one) == 0 {
			return count.Add(count, b.Sub(b, one)), nil
		}
		if b.Cmp(one) == 0 {
			return count.Add(count, a.Sub(a, one)), nil
		}
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		q.QuoRem(a, b, r)
		if r.Sign() == 0 {
			return nil, fmt.Errorf("euclid: (%s, %s): %w", m, f, ErrImpossible)
		}
		count.Add(count, q)
		a, b = b, a
		b.Set(r)
	}
}

// GenerationsString parses two decimal strings and calls Generations.
func GenerationsString(m, f string) (*big.Int, error) {
	mi, ok := new(big.Int).SetString(strings.TrimSpace(m), 10)
	if !ok {
		return nil, fmt.Errorf("euclid: %q: %w", m, ErrParse)
	}
	fi, ok := new(big.Int).SetString(strings.TrimSpace(f), 10)
	if !ok {
		return nil, fmt.Errorf("euclid: %q: %w", f, ErrParse)
	}

	return Generations(mi, fi)
}
