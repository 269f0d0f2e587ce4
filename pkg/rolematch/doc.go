// Package rolematch provides ready-made name-matching predicates for the
// role hierarchy manager. A predicate decides whether a newly materialized
// role name matches an existing role name, which lets pattern roles such as
// "tenant:*" stand in for whole families of concrete roles.
//
// Predicates are plain functions and can be composed:
//
//	m := rolegraph.New(
//	    rolegraph.WithMatchFunc(rolegraph.MatchFunc(rolematch.Match)),
//	)
//
//	// Scope wildcard matching to a single tenant domain:
//	fn := rolematch.InDomain(rolematch.Match)
//
// ByName resolves predicates from configuration values, so a matcher can be
// chosen through an environment variable or a seed file.
package rolematch
