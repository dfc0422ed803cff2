package keyring

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxHolders bounds the number of holders Distribute accepts.
const MaxHolders = 20

var (
	// ErrBadHolders indicates a holder count outside 1..MaxHolders.
	ErrBadHolders = errors.New("keyring: holder count out of range")
	// ErrBadRequired indicates a required count outside 0..holders.
	ErrBadRequired = errors.New("keyring: required count out of range")
)

// Distribute returns, for each holder, the sorted list of keys it receives.
// required == 0 needs no keys at all and yields empty lists.
// Complexity: O(C(n, r-1) · (n-r+1)) time and output size.
func Distribute(holders, required int) ([][]int, error) {
	if holders < 1 || holders > MaxHolders {
		return nil, fmt.Errorf("keyring: holders=%d: %w", holders, ErrBadHolders)
	}
	if required < 0 || required > holders {
		return nil, fmt.Errorf("keyring: required=%d with %d holders: %w", required, holders, ErrBadRequired)
	}

	out := make([][]int, holders)
	for i := range out {
		out[i] = []int{}
	}
	if required == 0 {
		return out, nil
	}

	copies := holders - required + 1
	keys := combin.Binomial(holders, required-1)
	for i := range out {
		// every holder sees keys*copies/holders keys by symmetry
		out[i] = make([]int, 0, keys*copies/holders)
	}

	gen := combin.NewCombinationGenerator(holders, copies)
	owners := make([]int, copies)
	for key := 0; gen.Next(); key++ {
		for _, h := range gen.Combination(owners) {
			out[h] = append(out[h], key)
		}
	}

	return out, nil
}
