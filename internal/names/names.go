// Package names holds the name pools the player factory composes identities from.
package names

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

//go:embed data/pools.yaml
var defaultPools []byte

// ErrEmptyPool is returned when a decoded pool cannot produce a name.
var ErrEmptyPool = errors.New("name pool is empty")

// Foreigner is a curated foreign identity: full name plus nation.
type Foreigner struct {
	Name   string `yaml:"name"`
	Nation string `yaml:"nation"`
}

// Pools are the independent first/last name lists plus the foreign pool.
type Pools struct {
	HomeNation string      `yaml:"home_nation"`
	FirstNames []string    `yaml:"first_names"`
	LastNames  []string    `yaml:"last_names"`
	Foreign    []Foreigner `yaml:"foreign"`
}

// Parse decodes a YAML pool document.
func Parse(data []byte) (*Pools, error) {
	var p Pools
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode name pools: %w", err)
	}
	if len(p.FirstNames) == 0 || len(p.LastNames) == 0 || len(p.Foreign) == 0 {
		return nil, ErrEmptyPool
	}
	return &p, nil
}

// Default returns the embedded pools. It panics only if the embedded file is broken.
func Default() *Pools {
	p, err := Parse(defaultPools)
	if err != nil {
		panic(fmt.Sprintf("embedded name pools: %v", err))
	}
	return p
}

// Home composes a home-nation name from the first and last lists independently.
func (p *Pools) Home(src random.Source) string {
	return random.Pick(src, p.FirstNames) + " " + random.Pick(src, p.LastNames)
}

// Abroad draws a curated foreign identity.
func (p *Pools) Abroad(src random.Source) Foreigner {
	return random.Pick(src, p.Foreign)
}
