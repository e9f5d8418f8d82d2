package disjoint

// Hooks observes the operations of a Sets instance.
//
// Every method is called before the corresponding structural change. Hooks are
// pure observation points: they must not mutate the Sets they observe.
type Hooks interface {
	// OnMakeSingleton is called right before a new singleton set is created.
	OnMakeSingleton()

	// OnMergeSets is called right before two sets are merged. a and b are the
	// operands after the merge-by-size decision; swapped reports whether the
	// caller's operands were exchanged. b's set survives the merge.
	OnMergeSets(a, b int, swapped bool)

	// OnCompressPath is called right before the path from element to root is
	// compressed.
	OnCompressPath(element, root int)
}

// NopHooks implements Hooks with no-op methods.
// Embed it to override a subset of the notifications.
type NopHooks struct{}

// OnMakeSingleton does nothing.
func (NopHooks) OnMakeSingleton() {}

// OnMergeSets does nothing.
func (NopHooks) OnMergeSets(int, int, bool) {}

// OnCompressPath does nothing.
func (NopHooks) OnCompressPath(int, int) {}

// Option configures a Sets instance at construction time.
type Option func(*Sets)

// WithMergeBySize toggles the merge-by-size optimization. Default: enabled.
func WithMergeBySize(enabled bool) Option {
	return func(s *Sets) { s.mergeBySize = enabled }
}

// WithPathCompression toggles full path compression in Find. Default: enabled.
func WithPathCompression(enabled bool) Option {
	return func(s *Sets) { s.pathCompression = enabled }
}

// WithHooks installs h as the observer of all operations.
// A nil h keeps the default NopHooks.
func WithHooks(h Hooks) Option {
	return func(s *Sets) {
		if h != nil {
			s.hooks = h
		}
	}
}
