package rolegraph

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DomainSeparator joins a tenant domain with a local role name. It is
// reserved: user-supplied names and domains must not contain it, or the
// resulting index keys become ambiguous.
const DomainSeparator = "::"

// DefaultMaxDepth is the reachability budget used when none is configured.
const DefaultMaxDepth = 10

// MatchFunc reports whether a newly materialized role should be linked to an
// existing one. The manager invokes it as fn(newcomer, existing); it is not
// applied symmetrically, so existing roles never gain edges to the newcomer.
type MatchFunc func(name, existing string) bool

// Manager owns the role hierarchy graph. It indexes every role by name,
// answers bounded-depth inheritance queries, and applies domain scoping by
// rewriting names at the call boundary.
//
// The manager is safe for concurrent use. Note that HasLink and GetRoles
// materialize the queried role as a side effect when a match function is
// installed, so they take the write path internally.
type Manager struct {
	mu       sync.RWMutex
	roles    map[string]*Role
	maxDepth int
	matchFn  MatchFunc
}

// New creates an empty role hierarchy manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		roles:    make(map[string]*Role),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetMatchFunc installs the name-matching predicate. It only affects roles
// materialized afterwards; already-indexed roles are not re-expanded.
func (m *Manager) SetMatchFunc(fn MatchFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchFn = fn
}

// AddLink adds the inheritance edge name1 -> name2, creating either role if
// it is not indexed yet. Duplicate links are silently dropped. At most one
// domain may be supplied; extra domain arguments are ignored.
func (m *Manager) AddLink(name1, name2 string, domain ...string) {
	name1 = scoped(name1, domain)
	name2 = scoped(name2, domain)

	m.mu.Lock()
	defer m.mu.Unlock()

	role1 := m.createRole(name1)
	role2 := m.createRole(name2)
	role1.addRole(role2)
}

// DeleteLink removes the inheritance edge name1 -> name2. It fails with
// ErrNotFound when either endpoint is not a known role under the installed
// match function; removing an edge that does not exist between two known
// roles is a no-op. Roles themselves are never deleted.
func (m *Manager) DeleteLink(name1, name2 string, domain ...string) error {
	name1 = scoped(name1, domain)
	name2 = scoped(name2, domain)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasRole(name1) || !m.hasRole(name2) {
		return errors.Join(ErrNotFound, fmt.Errorf("%q or %q is not a known role", name1, name2))
	}

	role1 := m.createRole(name1)
	role2 := m.createRole(name2)
	role1.deleteRole(role2)
	return nil
}

// HasLink reports whether name1 inherits name2 through at most the
// configured number of edge hops. A name always inherits itself, even when
// neither role is indexed; the identity check runs before domain rewriting.
func (m *Manager) HasLink(name1, name2 string, domain ...string) bool {
	if name1 == name2 {
		return true
	}

	name1 = scoped(name1, domain)
	name2 = scoped(name2, domain)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasRole(name1) || !m.hasRole(name2) {
		return false
	}
	return m.createRole(name1).hasRole(name2, m.maxDepth)
}

// GetRoles returns the roles name directly inherits, in edge insertion
// order. The result is empty when the role is unknown. When a domain is
// supplied, the "<domain>::" prefix is stripped from names that carry it.
func (m *Manager) GetRoles(name string, domain ...string) []string {
	name = scoped(name, domain)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasRole(name) {
		return nil
	}

	names := m.createRole(name).directRoles()
	for i := range names {
		names[i] = unscoped(names[i], domain)
	}
	return names
}

// GetUsers returns the names of all roles with a direct edge to name, in no
// particular order. The result is empty when the target is unknown. When a
// domain is supplied, the "<domain>::" prefix is stripped from names that
// carry it.
func (m *Manager) GetUsers(name string, domain ...string) []string {
	name = scoped(name, domain)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasRole(name) {
		return nil
	}

	var users []string
	for _, role := range m.roles {
		if role.hasDirectRole(name) {
			users = append(users, unscoped(role.name, domain))
		}
	}
	return users
}

// Clear discards every role and edge. The manager stays usable afterwards.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles = make(map[string]*Role)
}

// createRole returns the indexed role for name, materializing it on demand.
// When a match function is installed, every materialization runs an
// expansion pass linking the role to each existing role its name matches;
// edge deduplication keeps repeated passes idempotent. Callers must hold
// m.mu for writing.
func (m *Manager) createRole(name string) *Role {
	role, ok := m.roles[name]
	if !ok {
		role = newRole(name)
		m.roles[name] = role
	}

	if m.matchFn != nil {
		for existing, candidate := range m.roles {
			if existing == name {
				continue
			}
			if m.matchFn(name, existing) {
				role.addRole(candidate)
			}
		}
	}
	return role
}

// hasRole reports whether name counts as a known role: exact index
// containment, or a match against any indexed name when a match function is
// installed. Callers must hold m.mu.
func (m *Manager) hasRole(name string) bool {
	if m.matchFn != nil {
		for existing := range m.roles {
			if m.matchFn(name, existing) {
				return true
			}
		}
		return false
	}

	_, ok := m.roles[name]
	return ok
}

// ValidateName rejects names that would produce ambiguous index keys: empty
// strings and names containing the reserved domain separator. Link mutation
// does not validate; boundary code such as seed loading does.
func ValidateName(name string) error {
	if name == "" {
		return errors.Join(ErrInvalidName, errors.New("name cannot be empty"))
	}
	if strings.Contains(name, DomainSeparator) {
		return errors.Join(ErrInvalidName, fmt.Errorf("name %q contains reserved separator %q", name, DomainSeparator))
	}
	return nil
}

// scoped rewrites name into its domain-qualified form. Only the first
// domain argument is consulted.
func scoped(name string, domain []string) string {
	if len(domain) == 0 {
		return name
	}
	return domain[0] + DomainSeparator + name
}

// unscoped strips the domain qualifier from name when name actually carries
// it. Names from other domains (or none) pass through unchanged.
func unscoped(name string, domain []string) string {
	if len(domain) == 0 {
		return name
	}
	return strings.TrimPrefix(name, domain[0]+DomainSeparator)
}
