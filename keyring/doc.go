// Package keyring distributes copies of keys among holders so that any
// `required` holders together own every key while any `required-1` do not.
//
// Every group of required-1 holders must miss at least one key, and a distinct
// one per group, so there are C(n, required-1) keys. A key missed by a group
// is owned by everybody else: n-required+1 holders per key.
//
// Handing key i to the i-th (n-required+1)-combination of holders in
// lexicographic order yields per-holder lists that are sorted and, taken
// together, lexicographically least.
//
//	keys, err := keyring.Distribute(5, 3)
//	// keys[0] = [0 1 2 3 4 5]
//	// keys[4] = [2 4 5 7 8 9]
package keyring
