package rolegraph

import (
	"slices"
	"sync"
)

// Role is a single node in the hierarchy graph. A role may stand for a user
// or a group; the graph does not distinguish between the two. The name is
// immutable after creation. The outbound edge list has its own lock because
// a node is shared by every edge that points at it.
type Role struct {
	name string

	mu    sync.RWMutex
	roles []*Role
}

func newRole(name string) *Role {
	return &Role{name: name}
}

// Name returns the role's name. For domain-scoped roles this is the full
// "<domain>::<name>" form.
func (r *Role) Name() string {
	return r.name
}

// addRole appends an outbound edge to other. Edges are deduplicated by
// target name, so repeated adds are no-ops.
func (r *Role) addRole(other *Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, role := range r.roles {
		if role.name == other.name {
			return
		}
	}
	r.roles = append(r.roles, other)
}

// deleteRole removes the outbound edge whose target name equals other's.
// Removing an edge that does not exist is a no-op.
func (r *Role) deleteRole(other *Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles = slices.DeleteFunc(r.roles, func(role *Role) bool {
		return role.name == other.name
	})
}

// hasRole reports whether name is reachable from r within depth edge hops.
// The node's own identity counts as depth zero. The walk is depth-first and
// carries no visited set; the depth budget alone bounds it, so cycles are
// tolerated.
func (r *Role) hasRole(name string, depth int) bool {
	if r.name == name {
		return true
	}
	if depth <= 0 {
		return false
	}

	// Copy the edge list so no lock is held while recursing; a cycle would
	// otherwise re-enter this node's lock.
	r.mu.RLock()
	roles := slices.Clone(r.roles)
	r.mu.RUnlock()

	for _, role := range roles {
		if role.hasRole(name, depth-1) {
			return true
		}
	}
	return false
}

// directRoles returns the names of the direct outbound neighbors in edge
// insertion order.
func (r *Role) directRoles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.roles))
	for _, role := range r.roles {
		names = append(names, role.name)
	}
	return names
}

// hasDirectRole reports whether r has an outbound edge to name.
func (r *Role) hasDirectRole(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.name == name {
			return true
		}
	}
	return false
}
