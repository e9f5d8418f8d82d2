// Package tourbelt counts tour belts: connected vertex sets whose weakest
// inside edge is strictly stronger than the strongest edge leaving the set.
//
// Input
//
// A case count T, then T cases of the form
//
//	n m
//	u v k   (m lines; 1-based vertices, synergy k)
//
// For each case one line is written: the sum of |B| over every tour belt B
// with |B| >= 2.
//
// Algorithm
//
// Every tour belt appears as a component of Kruskal's maximum spanning forest
// at the moment it is formed, so only the |V|−1 merges need testing. beltHooks
// orders edges by descending synergy and, in OnMSTEdge (before the merge),
// folds the smaller component's per-vertex min/max synergy rows into the
// larger one's. One pass over the folded row yields the minimum inside edge and
// the maximum border edge of the merged component.
//
//   - Time:   O(m log m + n²) per case.
//   - Memory: O(n²) for the two synergy tables.
package tourbelt
