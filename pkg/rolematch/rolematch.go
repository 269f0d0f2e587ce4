package rolematch

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Wildcard is the pattern token that matches any run of characters.
	Wildcard = "*"

	// DomainSeparator joins a tenant domain with a local role name.
	DomainSeparator = "::"
)

// Func reports whether a role name matches an existing role name. The
// hierarchy manager calls it as fn(newcomer, existing), so the existing name
// is the one that may carry a pattern.
type Func func(name, pattern string) bool

// Exact matches only identical names.
func Exact(name, pattern string) bool {
	return name == pattern
}

// Match supports a single wildcard in the pattern: "*" matches any name,
// "role:*" matches any name with that prefix, "*:admin" any name with that
// suffix, and "role:*:reader" any name with both. Patterns without a
// wildcard must match exactly.
func Match(name, pattern string) bool {
	if name == pattern || pattern == Wildcard {
		return true
	}

	i := strings.Index(pattern, Wildcard)
	if i < 0 {
		return false
	}

	prefix, suffix := pattern[:i], pattern[i+1:]
	return len(name) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(name, prefix) &&
		strings.HasSuffix(name, suffix)
}

// InDomain wraps fn so that two names only match when they belong to the
// same domain (or both to none); fn is applied to the local parts.
func InDomain(fn Func) Func {
	return func(name, pattern string) bool {
		nameDomain, nameLocal, nameScoped := splitDomain(name)
		patternDomain, patternLocal, patternScoped := splitDomain(pattern)
		if nameScoped != patternScoped || nameDomain != patternDomain {
			return false
		}
		return fn(nameLocal, patternLocal)
	}
}

// ByName resolves a built-in matcher by its configuration name. Recognized
// names are "exact", "wildcard" and "domain-wildcard".
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return Exact, nil
	case "wildcard":
		return Match, nil
	case "domain-wildcard":
		return InDomain(Match), nil
	}
	return nil, errors.Join(ErrUnknownMatcher, fmt.Errorf("no built-in matcher named %q", name))
}

// splitDomain splits "<domain>::<local>" into its parts. The scoped result
// is false for names without a domain qualifier.
func splitDomain(name string) (domain, local string, scoped bool) {
	if i := strings.Index(name, DomainSeparator); i >= 0 {
		return name[:i], name[i+len(DomainSeparator):], true
	}
	return "", name, false
}
