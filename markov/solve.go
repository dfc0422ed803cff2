package markov

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlpuzzle/matrix"
)

// Solve returns the absorption distribution of the chain described by counts,
// starting from state 0.
//
// Steps:
//  1. Validate shape and signs; classify terminal rows (sum == 0).
//  2. If state 0 is terminal, return a distribution with StartTerminal set.
//  3. Order states: non-terminals first, terminals after, each group keeping
//     its original order. State 0 stays at position 0.
//  4. Build I − Q and R in exact rationals.
//  5. B = (I − Q)⁻¹ · R and read row 0.
//  6. Scale the probabilities to the LCM of their denominators.
//
// Complexity: O(t³ + t²·a) rational operations for t non-terminals and a terminals.
func Solve(counts [][]int) (*Distribution, error) {
	// 1) Validate
	n := len(counts)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	sums := make([]int64, n)
	for i, row := range counts {
		if len(row) != n {
			return nil, fmt.Errorf("markov: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("markov: count[%d][%d] = %d: %w", i, j, c, ErrNegativeCount)
			}
			sums[i] += int64(c)
		}
	}

	var transient, terminals []int
	for i, s := range sums {
		if s == 0 {
			terminals = append(terminals, i)
		} else {
			transient = append(transient, i)
		}
	}

	// 2) Start state is absorbing already
	if sums[0] == 0 {
		return startTerminal(terminals), nil
	}

	// 3-4) Blocks. transient[0] == 0 because state 0 is non-terminal.
	t, a := len(transient), len(terminals)
	if a == 0 {
		return nil, fmt.Errorf("markov: no terminal states: %w", ErrNoAbsorption)
	}
	iq, err := matrix.Identity(t)
	if err != nil {
		return nil, err
	}
	r, err := matrix.NewDense(t, a)
	if err != nil {
		return nil, err
	}
	p := new(big.Rat)
	for qi, from := range transient {
		for qj, to := range transient {
			if counts[from][to] == 0 {
				continue
			}
			p.SetFrac64(int64(counts[from][to]), sums[from])
			cur, _ := iq.At(qi, qj)
			if err = iq.Set(qi, qj, cur.Sub(cur, p)); err != nil {
				return nil, err
			}
		}
		for rj, to := range terminals {
			p.SetFrac64(int64(counts[from][to]), sums[from])
			if err = r.Set(qi, rj, p); err != nil {
				return nil, err
			}
		}
	}

	// 5) Fundamental matrix and absorption probabilities
	fundamental, err := matrix.Inverse(iq)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("markov: %w", ErrNoAbsorption)
		}
		return nil, err
	}
	first, err := matrix.Slice(fundamental, 0, 1, 0, t)
	if err != nil {
		return nil, err
	}
	b, err := matrix.Mul(first, r)
	if err != nil {
		return nil, err
	}
	probs, err := b.Row(0)
	if err != nil {
		return nil, err
	}

	// 6) Common denominator
	return newDistribution(terminals, probs), nil
}

// startTerminal is the distribution for a chain that begins absorbed.
func startTerminal(terminals []int) *Distribution {
	probs := make([]*big.Rat, len(terminals))
	for k, s := range terminals {
		if s == 0 {
			probs[k] = big.NewRat(1, 1)
		} else {
			probs[k] = new(big.Rat)
		}
	}
	d := newDistribution(terminals, probs)
	d.StartTerminal = true

	return d
}

func newDistribution(terminals []int, probs []*big.Rat) *Distribution {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, pr := range probs {
		den := pr.Denom()
		g.GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, g))
	}

	nums := make([]*big.Int, len(probs))
	for k, pr := range probs {
		num := new(big.Int).Quo(lcm, pr.Denom())
		nums[k] = num.Mul(num, pr.Num())
	}

	return &Distribution{
		Terminals:     append([]int(nil), terminals...),
		Probabilities: probs,
		Numerators:    nums,
		Denominator:   lcm,
	}
}
