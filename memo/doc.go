// Package memo provides memoizing function tables with recursion-guard
// semantics.
//
// A Table wraps a deterministic function from key to value and computes each
// distinct key at most once, caching the result for the lifetime of the
// table. The interesting part is not the caching but the guard: a key is
// marked pending before its computation starts, so a computation that calls
// back into the table with its own key — directly or through any chain of
// calls — fails immediately with ErrRecursiveEvaluation instead of growing
// the stack without bound.
//
// That makes memoized recursion safe to write naively. NewRecursive hands the
// computation a handle to the table's own Get, so recursive algorithms such
// as Fibonacci memoize every sub-key of the call tree, and an accidental
// self-dependency surfaces as a deterministic, catchable error rather than a
// stack overflow.
//
// Tables perform no internal synchronization. They are meant for a single
// goroutine; recursion detection works over the call stack, not across
// goroutines.
package memo
