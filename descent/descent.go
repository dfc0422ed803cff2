// Package descent counts the fewest operations that bring a positive integer
// down to 1 when the allowed moves are +1, -1 and halving an even number.
//
// Halving is always taken when possible. An odd n picks the neighbour
// divisible by 4: n-1 when n ≡ 1 (mod 4), n+1 when n ≡ 3 (mod 4). The one
// exception is 3, where 3→2→1 beats 3→4→2→1.
package descent

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrNonPositive indicates a starting value below 1.
	ErrNonPositive = errors.New("descent: value must be positive")
	// ErrParse indicates a string that is not a decimal integer.
	ErrParse = errors.New("descent: not a decimal integer")
)

var three = big.NewInt(3)

// Steps returns the minimum number of operations to reduce n to 1.
// n is not modified.
// Complexity: O(b) big-integer operations for a b-bit n.
func Steps(n *big.Int) (int, error) {
	if n == nil || n.Sign() <= 0 {
		return 0, ErrNonPositive
	}
	v := new(big.Int).Set(n)
	one := big.NewInt(1)
	steps := 0
	for v.Cmp(one) != 0 {
		switch {
		case v.Bit(0) == 0:
			v.Rsh(v, 1)
		case v.Cmp(three) == 0 || v.Bit(1) == 0:
			v.Sub(v, one)
		default:
			v.Add(v, one)
		}
		steps++
	}

	return steps, nil
}

// StepsString parses a decimal string and calls Steps.
func StepsString(s string) (int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return 0, fmt.Errorf("descent: %q: %w", s, ErrParse)
	}

	return Steps(n)
}
