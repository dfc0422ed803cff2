// Package lvlpuzzle is a collection of exact puzzle solvers built around a
// max-flow core.
//
// 🚀 What is inside?
//
//	flow/     — max flow from many entrances to many exits (Ford–Fulkerson with
//	            widest-first, BFS or DFS augmenting paths) + min-cut side
//	matrix/   — dense matrices of exact rationals, Gauss–Jordan inverse
//	markov/   — absorption probabilities of an absorbing Markov chain
//	nebula/   — number of previous states of a 2×2-window cellular automaton
//	keyring/  — key copies so that any k of n holders open every lock
//	sieve/    — five-digit identifiers cut from the concatenated primes
//	versions/ — ordering of dotted version strings
//	triangle/ — numbering of cells along anti-diagonals
//	descent/  — fewest +1 / −1 / halve steps down to 1
//	euclid/   — generations to reach a population pair, reverse Euclid
//
// Every package works on in-memory values, returns sentinel errors matched
// with errors.Is, and never panics on user input. Big answers use math/big.
//
// The lvlpuzzle command (cmd/lvlpuzzle) reads YAML or JSON inputs and runs
// one solver or a concurrent batch:
//
//	lvlpuzzle list
//	lvlpuzzle solve flow input.yaml
//	lvlpuzzle batch cases.yaml -j 4
package lvlpuzzle
