// Package rolegraph maintains an in-memory role hierarchy for authorization
// engines. It answers the question "does subject X inherit role Y?" under an
// RBAC model with optional tenant (domain) scoping.
//
// The hierarchy is a directed graph. Nodes are named principals — users and
// groups are structurally identical — and an edge reads as "inherits from".
// Roles are materialized on demand the first time any operation names them
// and live until Clear. Reachability is depth-first with a configurable hop
// budget, so cycles are harmless and inheritance can be capped per
// deployment.
//
// Key concepts:
//
//   - Link: a directed edge from subject to role
//   - Domain: a tenant namespace, realized as a "<domain>::" name prefix the
//     manager applies and strips at the call boundary
//   - Match function: an optional predicate that links newly materialized
//     roles to every existing role their name matches, enabling pattern
//     roles such as "tenant:*"
//
// Basic usage:
//
//	m := rolegraph.New(rolegraph.WithMaxDepth(3))
//
//	m.AddLink("alice", "editor")
//	m.AddLink("editor", "viewer")
//
//	m.HasLink("alice", "viewer") // true, two hops
//	m.GetRoles("alice")          // ["editor"]
//	m.GetUsers("editor")         // ["alice"]
//
//	// Tenant-scoped links live in their own namespace:
//	m.AddLink("bob", "admin", "tenant1")
//	m.HasLink("bob", "admin", "tenant2") // false
//
//	// Pattern roles via a match function:
//	m.SetMatchFunc(rolegraph.MatchFunc(rolematch.Match))
//
// Managers can also be configured from the environment (LoadConfig,
// NewFromConfig) or bootstrapped from a declarative YAML document
// (ParseSeed, NewFromSeed).
//
// When a match function is installed, HasLink and GetRoles materialize the
// queried role and run its expansion pass as a side effect; use GetUsers for
// a strictly read-only view.
package rolegraph
