// Package semigroup is your in-memory playground for building, exploring,
// and analyzing finite semigroups: from element algebra to resumable
// enumeration, Cayley graphs and defining relations.
//
// 🚀 What is semigroup?
//
//	A deterministic, resumable enumeration library that brings together:
//		• Element kinds: transformations, partial permutations, bipartitions,
//		  Boolean matrices, binary relations & host-wrapped values
//		• Enumeration: breadth-first closure over products, stoppable at any
//		  element limit and resumable without recomputation
//		• Words: minimal generator words, factorisation & evaluation
//		• Graphs: left/right Cayley graphs with strongly connected components
//		• Relations: defining presentations read off the closure
//
// ✨ Why choose semigroup?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Deterministic - one canonical order, whatever the enumeration schedule
//   - Interruptible - context-aware passes, pluggable progress reporting
//   - Extensible - wrap any host value with Ops{Mul, Cmp, One}
//
// Under the hood, everything is organized under four subpackages:
//
//	element/     - the six element kinds & their shared algebra
//	froidurepin/ - the enumeration engine: queries, words, graphs, rules
//	cayley/      - labeled multidigraph snapshots & Tarjan SCCs
//	congruence/  - presentation validation & the solver contract
//
// Quick ASCII example:
//
//	    [1 0]──a──[0 1]        units: the swap and the identity
//	    [0 0]──a──[1 1]        ideal: the two constant maps
//
//	the right Cayley graph of the monoid generated by the swap a and the
//	constant b on two points; every b-edge lands on [0 0].
//
// Dive into the per-package docs for usage, complexity and error contracts.
//
//	go get github.com/katalvlaran/semigroup
package semigroup
