// Package refine implements R4: Fiduccia-Mattheyses local-search
// partition refinement. FM moves boundary nodes between parts by a gain
// estimate stored in a keyed priority queue, rolling back to the best
// total-gain point seen once a pass's queue drains.
//
// Grounded on lvlath/dijkstra's container/heap lazy-decrease-key pattern
// (push duplicates, skip stale pops on inspection), generalized here from
// "stale if a shorter distance was found" to "stale if a generation
// counter advanced since the entry was pushed", and on
// original_source/tit/graph/refine/fm.hpp for the priority/gain
// definitions, rollback log, and outer-iteration cap (spec.md §4.11).
package refine
