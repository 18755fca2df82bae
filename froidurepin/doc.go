// Package froidurepin enumerates finite semigroups in the style of Froidure
// and Pin: given a non-empty list of same-kind, same-degree generators, it
// discovers every element reachable by repeated multiplication via
// breadth-first short-lex word expansion, incrementally and resumably, and
// answers structural queries on the partial or complete closure.
//
// What
//
//   - New(gens, opts...) validates the generators and seeds the engine;
//     letter i of the alphabet is gens[i], duplicates included, and distinct
//     generators occupy positions 0..u-1 in first-occurrence order.
//   - Enumerate(ctx, limit) expands the frontier until closure or until the
//     discovered count reaches limit; repeated calls with growing limits
//     resume a stateful computation, never recompute.
//   - Positions are assigned in exactly the short-lex order of minimal
//     generator words (length first, then lexicographic by letter), because
//     letters are tried in ascending order level by level and only the first
//     discovery route is recorded.
//   - Queries: Size, CurrentSize, CurrentMaxWordLength, IsDone, IsBegun,
//     CurrentPosition, Contains, NrIdempotents, Factorise, WordAt, At,
//     Iterator, SortedAt, PositionToSorted, RightCayleyGraph,
//     LeftCayleyGraph, Rules, Presentation.
//   - Evaluate(gens, word) multiplies a word back out, inverting Factorise.
//
// Why
//
//   - Closing a generating set under multiplication is the basic computation
//     of finite semigroup theory; sizes, membership, idempotent counts, and
//     word factorisations all fall out of one traversal.
//   - The closure can be enormous, so bounded, resumable passes and queries
//     that stop as soon as they can answer are the default working mode.
//
// Forcing vs non-forcing
//
//	Size, Contains, NrIdempotents, Factorise, Rules, and the graph and
//	sorted queries force enumeration as far as they need (possibly to full
//	closure). CurrentSize, CurrentMaxWordLength, IsDone, IsBegun, and
//	CurrentPosition only inspect current state. CurrentPosition keeps the
//	two kinds of absence apart: ErrNotEnumerated is a transient "don't
//	know", ErrNotAMember is definitive.
//
// Determinism
//
//	Discovery order, positions, Cayley rows, words, and rules are pure
//	functions of the generator list. The membership index deduplicates by
//	canonical encodings (BLAKE3 digests) or, for Wrapped kinds, by the host
//	comparator; neither choice influences the enumeration order.
//
// Concurrency
//
//	A Semigroup must not be used from multiple goroutines concurrently:
//	every expansion step depends on the previous ones through the shared
//	frontier and index. Cancellation is cooperative: Enumerate checks ctx
//	between frontier pops, and an aborted call leaves the engine consistent
//	and resumable. Distinct engines share nothing.
//
// Complexity (n = closure size, G = alphabet size, m = cost of one Mul)
//
//   - Enumerate to closure: n·G products, so O(n·G·m) plus n·G index probes
//     (O(1) hashed, O(log n) comparator-ordered).
//   - Factorise / WordAt: O(word length) after the element is located.
//   - NrIdempotents: n extra products, cached after the first call.
//   - Memory: O(n·G) ints for rows plus the table and index.
//
// Usage
//
//	a, _ := element.NewTransformation([]int{1, 0})
//	b, _ := element.NewTransformation([]int{0, 0})
//	s, err := froidurepin.New([]element.Element{a, b})
//	if err != nil { ... }
//
//	n, _ := s.Size(ctx)              // 4: forces closure
//	w, _ := s.Factorise(ctx, x)      // minimal word of x
//	y, _ := froidurepin.Evaluate([]element.Element{a, b}, w)
//	ok, _ := s.Contains(ctx, x)      // definitive membership
//
//	// Bounded, resumable passes:
//	_ = s.Enumerate(ctx, 100)        // stop once >= 100 elements are known
//	_ = s.Enumerate(ctx, froidurepin.NoLimit)
//
// Options
//
//   - DefaultOptions(): batch 8192, report every 8192 expansions, no-op
//     reporter.
//   - WithBatchSize(n):   positions enumerated per probe in forcing queries.
//   - WithReportEvery(n): expansions between OnProgress observations.
//   - WithReporter(r):    custom progress Reporter; see also SetReport.
//
// Errors
//
//   - ErrEmptyGenerators, ErrNilGenerator, wrapped element.ErrKindMismatch /
//     element.ErrDegreeMismatch, ErrOptionViolation  from New
//   - ErrInvalidLimit                                from Enumerate
//   - ErrNilElement                                  from element queries
//   - ErrNotEnumerated / ErrNotAMember               from position queries
//   - ErrIndexOutOfRange                             from positional queries
//   - ErrInvalidWord                                 from Evaluate
//
// Wrapped generators put the burden of associativity and comparator
// consistency on the caller; the engine enumerates whatever the host
// functions define, without verification.
package froidurepin
