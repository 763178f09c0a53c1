// Package dijkstra computes the minimum-cost path between two vertices of a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - The solver is a greedy label-setting algorithm (Dijkstra's algorithm)
//     written without a priority queue. It grows a set of visited vertices,
//     each with its settled (distance, predecessor) record, one vertex per
//     round.
//   - A frontier edge is an edge whose source is visited and whose
//     destination is not. Each round the frontier edge (s, d) minimizing
//     visited[s].Distance + w(s, d) is selected and d is settled with that
//     distance and predecessor s. Because weights are non-negative, that
//     choice can never be improved later, so d's record is final.
//   - The search stops as soon as the target is settled (success) or the
//     frontier is empty (ErrNotFound).
//
// Strategies:
//
//	All strategies settle vertices with identical distances; they differ
//	only in how the frontier is obtained each round.
//
//	StrategyRescan       rebuild the frontier from scratch with an explicit
//	                     scan over every visited vertex's outgoing edges.
//	StrategyDeclarative  rebuild it as a filtered set: the sequence of all
//	                     edges leaving the visited set, filtered by
//	                     "destination not visited". Same cost as Rescan.
//	StrategyIncremental  (default) keep the frontier across rounds: after
//	                     settling u, add u's edges to unvisited vertices and
//	                     drop every edge ending at u.
//
// Tie-break:
//
//	When several frontier edges share the minimal cost, the one with the
//	smallest (From, To) pair wins. This is deterministic across runs but it
//	is not a canonical choice among equal-cost paths; callers should not
//	depend on which of several shortest paths is returned.
//
// Complexity (V = visited vertices at stop, E = edges leaving them):
//
//   - Rescan / Declarative: O(V·(V + E)) time, O(E) space per round.
//   - Incremental:          O(V·F) time where F is the frontier size, O(E) space.
//
// Options:
//
//   - WithStrategy(s):     choose the frontier strategy.
//   - WithContext(ctx):    checked once per round.
//   - WithMaxRounds(n):    settle at most n vertices, else ErrRoundBudget (0 = unlimited).
//   - WithLogger(l):       debug trace of every settled vertex via logrus.
//
// Errors (sentinel):
//
//   - ErrNotFound         target unreachable from source. This is an expected
//     outcome; branch on it with errors.Is.
//   - ErrGraphNil         nil *core.Graph.
//   - ErrEmptySource      empty source ID.
//   - ErrEmptyTarget      empty target ID.
//   - ErrOptionViolation  invalid option value (e.g. negative round budget,
//     unknown strategy).
//   - ErrRoundBudget      WithMaxRounds exhausted before the target settled.
//   - ErrDistanceOverflow the cheapest frontier cost exceeds math.MaxInt64.
//     Overflowing sums rank after every finite cost, so this only fires when
//     no finite-cost vertex is left to settle.
//
// Either a complete (distance, path) pair or an error is returned; partial
// results are never exposed.
//
// Thread safety:
//
//   - Every call owns its own visited record and frontier. Concurrent calls on
//     the same graph are safe as long as nobody mutates it (see core.Graph.Freeze).
package dijkstra
