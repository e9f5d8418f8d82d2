package disjoint

import "fmt"

// Sets is a partition of {0, 1, ..., n-1} into disjoint sets.
//
// The zero value is not usable; construct with New.
type Sets struct {
	// parentOrSize[i] >= 0 is the parent of i; < 0 marks a root holding -size.
	parentOrSize []int

	// count is the number of disjoint sets currently in the partition.
	count int

	mergeBySize     bool
	pathCompression bool
	hooks           Hooks
}

// New creates a partition of n singleton sets {0}, {1}, ..., {n-1}.
// Both optimizations are enabled unless switched off by opts.
// It panics if n is negative.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *Sets {
	if n < 0 {
		panic(fmt.Sprintf("disjoint: negative element count %d", n))
	}
	s := &Sets{
		parentOrSize:    make([]int, n),
		count:           n,
		mergeBySize:     true,
		pathCompression: true,
		hooks:           NopHooks{},
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.parentOrSize {
		s.parentOrSize[i] = -1
	}

	return s
}

// MakeSingleton appends a new element in its own set and returns it.
// The returned element always equals UnionSize() before the call.
func (s *Sets) MakeSingleton() int {
	s.hooks.OnMakeSingleton()
	s.parentOrSize = append(s.parentOrSize, -1)
	s.count++

	return len(s.parentOrSize) - 1
}

// Find returns the representative of the set containing element.
//
// With path compression enabled, every node on the path from element to the
// root is re-pointed at the root, unless element already is the root or its
// direct child.
func (s *Sets) Find(element int) int {
	s.check(element)
	root := element
	for s.parentOrSize[root] >= 0 {
		root = s.parentOrSize[root]
	}
	if !s.pathCompression || root == element || root == s.parentOrSize[element] {
		return root
	}

	s.hooks.OnCompressPath(element, root)
	for element != root {
		parent := s.parentOrSize[element]
		s.parentOrSize[element] = root
		element = parent
	}

	return root
}

// MergeSets merges the set containing a with the set containing b and returns
// the representative of the merged set.
//
// With merge by size enabled, a strictly larger set on a's side is swapped to
// b's side first, so the larger set's root survives. Otherwise, and on ties,
// Find(b) survives. Merging an element with its own set changes nothing and
// returns the common representative.
func (s *Sets) MergeSets(a, b int) int {
	swapped := false
	if s.mergeBySize && s.Size(a) > s.Size(b) {
		a, b = b, a
		swapped = true
	}
	s.hooks.OnMergeSets(a, b, swapped)

	a, b = s.Find(a), s.Find(b)
	if a == b {
		return b
	}
	s.parentOrSize[b] += s.parentOrSize[a]
	s.parentOrSize[a] = b
	s.count--

	return b
}

// Same reports whether a and b belong to the same set.
func (s *Sets) Same(a, b int) bool {
	return s.Find(a) == s.Find(b)
}

// Parent returns the forest parent of element, or element itself for a root.
// Unlike Find it never compresses paths.
func (s *Sets) Parent(element int) int {
	s.check(element)
	if p := s.parentOrSize[element]; p >= 0 {
		return p
	}

	return element
}

// Size returns the number of elements in the set containing element.
func (s *Sets) Size(element int) int {
	return -s.parentOrSize[s.Find(element)]
}

// UnionSize returns the total number of elements in the partition.
func (s *Sets) UnionSize() int { return len(s.parentOrSize) }

// Count returns the number of disjoint sets in the partition.
func (s *Sets) Count() int { return s.count }

// Sets returns the groups of the partition. Each group is sorted ascending and
// groups are ordered by their smallest element.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (s *Sets) Sets() [][]int {
	index := make(map[int]int, s.count) // root → position in groups
	groups := make([][]int, 0, s.count)
	for i := range s.parentOrSize {
		root := s.Find(i)
		pos, ok := index[root]
		if !ok {
			pos = len(groups)
			index[root] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], i)
	}
	// Elements are visited in increasing order, so each group is already sorted
	// and groups appear in order of their smallest member.
	return groups
}

// check panics unless 0 <= element < UnionSize().
func (s *Sets) check(element int) {
	if element < 0 || element >= len(s.parentOrSize) {
		panic(fmt.Sprintf("disjoint: element %d out of range [0, %d)", element, len(s.parentOrSize)))
	}
}
