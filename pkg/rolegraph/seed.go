package rolegraph

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/authzkit/authzkit/pkg/rolematch"
)

// SeedLink is a single inheritance edge in a seed document.
type SeedLink struct {
	User   string `yaml:"user"`
	Role   string `yaml:"role"`
	Domain string `yaml:"domain,omitempty"`
}

// Seed is a declarative bootstrap document for a Manager:
//
//	max_depth: 5
//	matcher: wildcard
//	links:
//	  - {user: alice, role: editor}
//	  - {user: editor, role: viewer}
//	  - {user: bob, role: admin, domain: tenant1}
type Seed struct {
	MaxDepth *int       `yaml:"max_depth,omitempty"`
	Matcher  string     `yaml:"matcher,omitempty"`
	Links    []SeedLink `yaml:"links"`
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(content []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return Seed{}, errors.Join(ErrInvalidSeed, err)
	}
	return seed, nil
}

// NewFromSeed creates a Manager configured and populated from a seed
// document.
func NewFromSeed(seed Seed) (*Manager, error) {
	var opts []Option
	if seed.MaxDepth != nil {
		if *seed.MaxDepth < 0 {
			return nil, errors.Join(ErrInvalidSeed, ErrInvalidConfig)
		}
		opts = append(opts, WithMaxDepth(*seed.MaxDepth))
	}
	if seed.Matcher != "" {
		fn, err := rolematch.ByName(seed.Matcher)
		if err != nil {
			return nil, errors.Join(ErrInvalidSeed, err)
		}
		opts = append(opts, WithMatchFunc(MatchFunc(fn)))
	}

	m := New(opts...)
	if err := m.ApplySeed(seed); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplySeed adds every link of the seed document to the manager. Unlike
// AddLink it validates names at the boundary, so a seed cannot smuggle the
// reserved domain separator into index keys. Links applied before an
// invalid one stay in place.
func (m *Manager) ApplySeed(seed Seed) error {
	for _, link := range seed.Links {
		if err := ValidateName(link.User); err != nil {
			return err
		}
		if err := ValidateName(link.Role); err != nil {
			return err
		}
		if link.Domain == "" {
			m.AddLink(link.User, link.Role)
			continue
		}
		if err := ValidateName(link.Domain); err != nil {
			return err
		}
		m.AddLink(link.User, link.Role, link.Domain)
	}
	return nil
}
