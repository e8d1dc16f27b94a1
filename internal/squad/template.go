package squad

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/league.yaml
var defaultLeague []byte

// ErrNoClubs is returned when a template document lists no clubs.
var ErrNoClubs = errors.New("league template has no clubs")

// ClubTemplate is the design-time description of a club.
type ClubTemplate struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	TargetStrength  int     `yaml:"target_strength"`
	Reputation      float64 `yaml:"reputation"`
	Budget          float64 `yaml:"budget"`
	WageBudget      float64 `yaml:"wage_budget"`
	FanBase         int     `yaml:"fan_base"`
	StadiumCapacity int     `yaml:"stadium_capacity"`
	HomeGrownOnly   bool    `yaml:"home_grown_only"`
}

type leagueDoc struct {
	Clubs []ClubTemplate `yaml:"clubs"`
}

// ParseTemplates decodes a YAML league document.
func ParseTemplates(data []byte) ([]ClubTemplate, error) {
	var doc leagueDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode league template: %w", err)
	}
	if len(doc.Clubs) == 0 {
		return nil, ErrNoClubs
	}
	return doc.Clubs, nil
}

// DefaultTemplates returns the embedded 18-club league.
func DefaultTemplates() []ClubTemplate {
	clubs, err := ParseTemplates(defaultLeague)
	if err != nil {
		panic(fmt.Sprintf("embedded league template: %v", err))
	}
	return clubs
}
