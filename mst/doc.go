// Package mst computes minimum spanning forests with Kruskal's sort-and-union
// sweep, exposing every phase of the algorithm through a Hooks object.
//
// What & Why
//
//   - A spanning forest of a graph G = (V, E) is an acyclic edge subset that
//     connects every pair of vertices that G connects. A minimum spanning forest
//     minimizes the total edge weight; on a connected graph it is a minimum
//     spanning tree with exactly |V|−1 edges.
//
//   - Kruskal's greedy argument: repeatedly accepting the cheapest edge that does
//     not close a cycle is optimal (cut property). Union-find (package disjoint)
//     answers "does this edge close a cycle?" in near-constant amortized time.
//
// Algorithm
//
//  1. components := hooks.NewComponents(g.VertexCount())
//  2. hooks.OnSetUp(g, components)
//  3. hooks.SortEdges(g.Edges()), sorting the graph's own edge slice in place
//  4. for each edge in order: if Find(source) != Find(target) the edge is
//     appended to the result, hooks.OnMSTEdge(edge) fires, then the two sets
//     are merged; otherwise hooks.OnNonMSTEdge(edge) fires
//  5. hooks.OnTearDown()
//
// Every edge is visited: there is no early exit after |V|−1 acceptances, so
// OnNonMSTEdge sees all remaining edges.
//
// Direction is ignored for connectivity. This is exact for undirected graphs
// and an accepted approximation for directed input. Self-loops are always
// rejected; among parallel edges only the first one in sort order can be
// accepted.
//
// Hooks
//
// Hooks is an interface; calls go through dynamic dispatch (one indirect call
// per hook per edge, measured in BenchmarkKruskal). Embed BaseHooks to override
// only what you need. BaseHooks.OnSetUp keeps the graph and partition so
// callbacks can read them through Graph() and Components(); OnTearDown clears
// them. An override of OnSetUp should call the embedded BaseHooks.OnSetUp.
//
// Ordering
//
// The default SortEdges sorts ascending by BaseHooks.Compare with an unstable
// sort, so the tie-break between equal attributes is unspecified. Set Stable
// (or override SortEdges) for reproducible accept/reject sequences.
//
// Side effects
//
// SortEdges reorders the caller's graph. Clone the graph first (core.Graph.Clone)
// when the original order matters.
//
// Complexity
//
//   - Time:   O(E log E + E·α(V)), sorting dominates.
//   - Memory: O(V) for the partition plus the result (at most V−1 edges).
//
// Concurrency
//
// One invocation owns its partition. Callers must not touch the partition
// from outside the hooks while a computation is in flight, and must not run
// two invocations over the same graph concurrently. There is no cancellation;
// bound the edge count before calling if work must be limited.
//
// A frontier-growth strategy (Prim) is not provided.
package mst
