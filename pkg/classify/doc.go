/*
Package classify drives syntactic classification of a parsed tree: it decides
which parts of the tree need classifying for a set of requested ranges,
invokes the registered classifiers on matching units, and collects the
deduplicated results.

Flow of one call:

	Requested Ranges          Syntax Tree
	       |                       |
	       v                       v
	  +---------+   prune    +----------+
	  | RangeSet| <--------- | Worklist |  (LIFO, pool-borrowed)
	  +---------+            +----------+
	                              |
	                     dispatch per (unit, range)
	                              |
	                              v
	                      +--------------+
	                      | Classifiers  |  (ordered per kind, all run)
	                      +--------------+
	                              |
	                        scratch Sink
	                              |
	                              v
	                      +--------------+
	                      | dedup + emit |  -> caller's output slice
	                      +--------------+

Pruning runs against each unit's full extent (span plus trivia), so the work
done is bounded by the requested ranges rather than the tree size. Structured
trivia roots re-enter the same worklist and get identical treatment.

Output order follows traversal insertion order, which is depth-first but not
left-to-right; use span.SortClassified when document order matters.
*/
package classify
