// Package sieve builds identifiers from the digits of consecutive primes.
//
// The primes written one after another form the string
// "2357111317192329...". The identifier for index i is the five digits
// starting at position i of that string.
package sieve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IDLength is the number of digits in an identifier.
const IDLength = 5

// MaxIndex bounds the index accepted by ID.
const MaxIndex = 1_000_000

var (
	// ErrNegativeIndex indicates an index below zero.
	ErrNegativeIndex = errors.New("sieve: negative index")
	// ErrIndexTooLarge indicates an index above MaxIndex.
	ErrIndexTooLarge = errors.New("sieve: index too large")
)

// Primes returns every prime p <= limit in ascending order using the sieve of
// Eratosthenes.
// Complexity: O(limit log log limit) time, O(limit) memory.
func Primes(limit int) []int {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []int
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}

	return primes
}

// Digits returns the first n digits of the concatenated primes.
// The sieve limit doubles until enough digits are available.
func Digits(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	for limit := 64; ; limit *= 2 {
		sb.Reset()
		for _, p := range Primes(limit) {
			sb.WriteString(strconv.Itoa(p))
			if sb.Len() >= n {
				return sb.String()[:n]
			}
		}
	}
}

// ID returns the identifier starting at digit index.
func ID(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("sieve: index %d: %w", index, ErrNegativeIndex)
	}
	if index > MaxIndex {
		return "", fmt.Errorf("sieve: index %d > %d: %w", index, MaxIndex, ErrIndexTooLarge)
	}

	return Digits(index + IDLength)[index:], nil
}
