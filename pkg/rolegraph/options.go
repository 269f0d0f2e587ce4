package rolegraph

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithMaxDepth sets the reachability budget: the maximum number of edge hops
// HasLink follows. Zero permits only the identity match. Negative values are
// treated as zero.
func WithMaxDepth(depth int) Option {
	return func(m *Manager) {
		if depth < 0 {
			depth = 0
		}
		m.maxDepth = depth
	}
}

// WithMatchFunc installs the name-matching predicate used for role
// expansion and membership tests.
func WithMatchFunc(fn MatchFunc) Option {
	return func(m *Manager) {
		m.matchFn = fn
	}
}
