/*
Package seqs provides deferred sequence operations over Go iterators (iter.Seq).

  - **Lazy adapters**: [Filter], [Transform] and [Cast] do no work until the result is ranged
    over, and hold at most one element at a time.
  - **Sorting**: [SortBy], [SortByDescending] and their Func variants drain the source once,
    compute every key once, and stable-sort the buffered elements.
  - **Sinks**: [ForAll], [Any], [First] and [Count] consume the source eagerly.
  - **Generators and flow control**: [Range], [Repeat], [Take], [Skip].

# Argument Validation

Every operation checks its arguments before touching a single element. A nil sequence,
function or comparer is reported as [ErrInvalidArgument] from the call itself, even for the lazy
adapters. Use [Must] to chain calls whose arguments are known to be valid:

	evens := seqs.Must(seqs.Filter(slices.Values(xs), isEven))
	squares := seqs.Must(seqs.Transform(evens, square))

# Element Errors

Only [Cast] can fail while iterating. It yields pairs of (element, error), and the first element
that is not of the target type arrives with [ErrInvalidCast] and ends the sequence.

# Descending Order

Descending sorts negate the comparer instead of reversing an ascending result, so elements with
equal keys stay in source order in both directions.
*/
package seqs
