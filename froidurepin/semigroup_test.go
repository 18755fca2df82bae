package froidurepin_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/semigroup/element"
	"github.com/katalvlaran/semigroup/froidurepin"
)

// mustTransformation builds a Transformation or fails the test.
func mustTransformation(t *testing.T, images ...int) *element.Transformation {
	t.Helper()
	el, err := element.NewTransformation(images)
	if err != nil {
		t.Fatalf("NewTransformation(%v): %v", images, err)
	}

	return el
}

// twoPointMonoid returns the scenario generators Transformation([1,0]) and
// Transformation([0,0]); together they generate all 4 maps on 2 points.
func twoPointMonoid(t *testing.T) []element.Element {
	t.Helper()

	return []element.Element{
		mustTransformation(t, 1, 0),
		mustTransformation(t, 0, 0),
	}
}

// TestNew_Errors verifies that invalid generator lists and options are rejected.
func TestNew_Errors(t *testing.T) {
	// empty generator list
	if _, err := froidurepin.New(nil); !errors.Is(err, froidurepin.ErrEmptyGenerators) {
		t.Errorf("empty gens: want ErrEmptyGenerators, got %v", err)
	}
	// nil generator
	gens := []element.Element{mustTransformation(t, 0, 1), nil}
	if _, err := froidurepin.New(gens); !errors.Is(err, froidurepin.ErrNilGenerator) {
		t.Errorf("nil gen: want ErrNilGenerator, got %v", err)
	}
	// mixed kinds
	pp, err := element.NewPartialPerm([]int{0}, []int{1}, 2)
	if err != nil {
		t.Fatalf("NewPartialPerm: %v", err)
	}
	mixed := []element.Element{mustTransformation(t, 0, 1), pp}
	if _, err := froidurepin.New(mixed); !errors.Is(err, element.ErrKindMismatch) {
		t.Errorf("mixed kinds: want ErrKindMismatch, got %v", err)
	}
	// mixed degrees
	degrees := []element.Element{mustTransformation(t, 0, 1), mustTransformation(t, 0, 1, 2)}
	if _, err := froidurepin.New(degrees); !errors.Is(err, element.ErrDegreeMismatch) {
		t.Errorf("mixed degrees: want ErrDegreeMismatch, got %v", err)
	}
	// non-positive batch size is a violation
	if _, err := froidurepin.New(twoPointMonoid(t), froidurepin.WithBatchSize(0)); !errors.Is(err, froidurepin.ErrOptionViolation) {
		t.Errorf("batch size 0: want ErrOptionViolation, got %v", err)
	}
	// non-positive report cadence is a violation
	if _, err := froidurepin.New(twoPointMonoid(t), froidurepin.WithReportEvery(-1)); !errors.Is(err, froidurepin.ErrOptionViolation) {
		t.Errorf("report every -1: want ErrOptionViolation, got %v", err)
	}
}

// TestNew_Seeding covers the state of a fresh engine before any enumeration.
func TestNew_Seeding(t *testing.T) {
	s, err := froidurepin.New(twoPointMonoid(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.IsBegun() {
		t.Error("IsBegun = true before any Enumerate; want false")
	}
	if s.IsDone() {
		t.Error("IsDone = true with an unexpanded frontier; want false")
	}
	if got := s.CurrentSize(); got != 2 {
		t.Errorf("CurrentSize = %d; want 2 (the generators)", got)
	}
	if got := s.CurrentMaxWordLength(); got != 1 {
		t.Errorf("CurrentMaxWordLength = %d; want 1", got)
	}
	if got := s.Kind(); got != element.KindTransformation {
		t.Errorf("Kind = %v; want Transformation", got)
	}
	if got := s.Degree(); got != 2 {
		t.Errorf("Degree = %d; want 2", got)
	}
	if got := s.NrGenerators(); got != 2 {
		t.Errorf("NrGenerators = %d; want 2", got)
	}
	g, err := s.Generator(1)
	if err != nil {
		t.Fatalf("Generator(1): %v", err)
	}
	if !g.Equal(mustTransformation(t, 0, 0)) {
		t.Errorf("Generator(1) = %v; want Transformation([0 0])", g)
	}
	if _, err := s.Generator(2); !errors.Is(err, froidurepin.ErrIndexOutOfRange) {
		t.Errorf("Generator(2): want ErrIndexOutOfRange, got %v", err)
	}
	if _, err := s.Generator(-1); !errors.Is(err, froidurepin.ErrIndexOutOfRange) {
		t.Errorf("Generator(-1): want ErrIndexOutOfRange, got %v", err)
	}
}

// TestEnumerate_InvalidLimit rejects negative limits without touching state.
func TestEnumerate_InvalidLimit(t *testing.T) {
	s, _ := froidurepin.New(twoPointMonoid(t))
	if err := s.Enumerate(context.Background(), -1); !errors.Is(err, froidurepin.ErrInvalidLimit) {
		t.Errorf("limit -1: want ErrInvalidLimit, got %v", err)
	}
	if s.IsBegun() {
		t.Error("rejected Enumerate marked the engine begun")
	}
	if got := s.CurrentSize(); got != 2 {
		t.Errorf("CurrentSize after rejected call = %d; want 2", got)
	}
}

// TestEnumerate_FullClosure covers the two-point monoid ground truth:
// 4 elements, longest minimal word 2.
func TestEnumerate_FullClosure(t *testing.T) {
	s, _ := froidurepin.New(twoPointMonoid(t))
	size, err := s.Size(context.Background())
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 4 {
		t.Errorf("Size = %d; want 4", size)
	}
	if !s.IsDone() {
		t.Error("IsDone = false after Size; want true")
	}
	if !s.IsBegun() {
		t.Error("IsBegun = false after Size; want true")
	}
	if got := s.CurrentMaxWordLength(); got != 2 {
		t.Errorf("CurrentMaxWordLength = %d; want 2", got)
	}
	// Size is idempotent.
	again, err := s.Size(context.Background())
	if err != nil || again != 4 {
		t.Errorf("second Size = %d, %v; want 4, nil", again, err)
	}
}

// TestEnumerate_BoundedAndResumed verifies that a bounded pass stops near its
// limit and a later pass resumes instead of restarting.
func TestEnumerate_BoundedAndResumed(t *testing.T) {
	ctx := context.Background()
	s, _ := froidurepin.New(twoPointMonoid(t))

	// Limit 3 with alphabet size 2: overshoot is at most 1 position.
	if err := s.Enumerate(ctx, 3); err != nil {
		t.Fatalf("bounded Enumerate: %v", err)
	}
	if got := s.CurrentSize(); got < 3 || got > 4 {
		t.Errorf("CurrentSize after limit 3 = %d; want 3 or 4", got)
	}
	if !s.IsBegun() {
		t.Error("IsBegun = false after bounded Enumerate")
	}

	// Record discovered elements, then finish and re-check: positions are
	// stable across resumption.
	before := make([]element.Element, s.CurrentSize())
	for i := range before {
		el, err := s.At(ctx, i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		before[i] = el
	}
	if err := s.Enumerate(ctx, froidurepin.NoLimit); err != nil {
		t.Fatalf("resumed Enumerate: %v", err)
	}
	if got := s.CurrentSize(); got != 4 {
		t.Errorf("CurrentSize after resume = %d; want 4", got)
	}
	for i, want := range before {
		got, err := s.At(ctx, i)
		if err != nil {
			t.Fatalf("At(%d) after resume: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("position %d changed across resume: %v -> %v", i, want, got)
		}
	}
}

// TestEnumerate_NoOp checks that a limit at or below the current size does
// nothing except mark the engine begun.
func TestEnumerate_NoOp(t *testing.T) {
	s, _ := froidurepin.New(twoPointMonoid(t))
	if err := s.Enumerate(context.Background(), 2); err != nil {
		t.Fatalf("no-op Enumerate: %v", err)
	}
	if got := s.CurrentSize(); got != 2 {
		t.Errorf("CurrentSize after no-op = %d; want 2", got)
	}
	if !s.IsBegun() {
		t.Error("no-op Enumerate must still mark the engine begun")
	}
	// Limit 0 is valid and also a no-op.
	if err := s.Enumerate(context.Background(), 0); err != nil {
		t.Errorf("Enumerate(0): unexpected error %v", err)
	}
}

// TestSingleIdempotentBipartition covers the one-element semigroup: flags
// flip exactly as queries run.
func TestSingleIdempotentBipartition(t *testing.T) {
	b, err := element.NewBipartition([]int{1, -1}, []int{2, 3, -3}, []int{-2})
	if err != nil {
		t.Fatalf("NewBipartition: %v", err)
	}
	s, err := froidurepin.New([]element.Element{b})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.IsBegun() {
		t.Error("IsBegun = true before any query; want false")
	}
	size, err := s.Size(context.Background())
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 1 {
		t.Errorf("Size = %d; want 1", size)
	}
	if !s.IsBegun() {
		t.Error("IsBegun = false after Size; want true")
	}
	if !s.IsDone() {
		t.Error("IsDone = false after Size; want true")
	}
	n, err := s.NrIdempotents(context.Background())
	if err != nil || n != 1 {
		t.Errorf("NrIdempotents = %d, %v; want 1, nil", n, err)
	}
}

// TestDuplicateGenerators keeps duplicates as alphabet letters but not as
// table positions.
func TestDuplicateGenerators(t *testing.T) {
	ctx := context.Background()
	swap := mustTransformation(t, 1, 0)
	gens := []element.Element{swap, swap, mustTransformation(t, 0, 0)}

	s, err := froidurepin.New(gens)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.NrGenerators(); got != 3 {
		t.Errorf("NrGenerators = %d; want 3 (duplicates kept as letters)", got)
	}
	if got := s.CurrentSize(); got != 2 {
		t.Errorf("CurrentSize = %d; want 2 (duplicates share a position)", got)
	}
	size, err := s.Size(ctx)
	if err != nil || size != 4 {
		t.Fatalf("Size = %d, %v; want 4, nil", size, err)
	}

	// The duplicate letter evaluates to the same element as the first.
	w0, err := froidurepin.Evaluate(gens, froidurepin.Word{0})
	if err != nil {
		t.Fatalf("Evaluate([0]): %v", err)
	}
	w1, err := froidurepin.Evaluate(gens, froidurepin.Word{1})
	if err != nil {
		t.Fatalf("Evaluate([1]): %v", err)
	}
	if !w0.Equal(w1) {
		t.Errorf("letters 0 and 1 evaluate differently: %v vs %v", w0, w1)
	}

	// Factorisation never uses the duplicate letter: the first occurrence is
	// lexicographically smaller.
	id := mustTransformation(t, 0, 1)
	w, err := s.Factorise(ctx, id)
	if err != nil {
		t.Fatalf("Factorise(identity): %v", err)
	}
	if want := (froidurepin.Word{0, 0}); !reflect.DeepEqual(w, want) {
		t.Errorf("Factorise(identity) = %v; want %v", w, want)
	}
}

// TestEnumerate_Cancellation verifies that a cancelled context halts the pass
// and leaves the engine resumable.
func TestEnumerate_Cancellation(t *testing.T) {
	// T_4 is large enough that the first pass cannot finish in zero steps.
	gens := []element.Element{
		mustTransformation(t, 1, 2, 3, 0),
		mustTransformation(t, 1, 0, 2, 3),
		mustTransformation(t, 0, 0, 2, 3),
	}
	s, err := froidurepin.New(gens)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if err := s.Enumerate(ctx, froidurepin.NoLimit); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled Enumerate: want context.Canceled, got %v", err)
	}

	// The engine is consistent and resumes to the full monoid on 4 points.
	size, err := s.Size(context.Background())
	if err != nil {
		t.Fatalf("Size after cancellation: %v", err)
	}
	if size != 256 {
		t.Errorf("Size = %d; want 256 (all maps on 4 points)", size)
	}
}
