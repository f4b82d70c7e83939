// Package rules holds the fixed estimate tables used by the annotators.
//
// Each table is an ordered list of rules; the first rule whose condition
// holds for a launch supplies the value. The tables are embedded YAML and
// are not configurable at runtime.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cost_rules.yaml
var costRulesYAML []byte

//go:embed payload_rules.yaml
var payloadRulesYAML []byte

// Subject is the part of a launch record the rules look at.
type Subject struct {
	Mission    string
	Vehicle    string
	LaunchDate string
}

// Condition is a conjunction of predicates. Unset predicates hold trivially.
type Condition struct {
	// VehicleContains requires every listed substring in the vehicle name.
	VehicleContains []string `yaml:"vehicle_contains,omitempty"`
	VehicleEquals   string   `yaml:"vehicle_equals,omitempty"`
	// MissionContainsAny requires at least one listed substring in the mission name.
	MissionContainsAny []string `yaml:"mission_contains_any,omitempty"`
	// LaunchedOnOrAfter compares ISO dates lexicographically.
	LaunchedOnOrAfter    string `yaml:"launched_on_or_after,omitempty"`
	StarlinkGroupAtLeast *int   `yaml:"starlink_group_at_least,omitempty"`
}

// Rule maps a condition to an estimated value.
type Rule struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	When        Condition `yaml:"when"`
	Value       int       `yaml:"value"`
}

// RuleSet is an ordered rule table for one record field.
type RuleSet struct {
	Name  string `yaml:"name"`
	Field string `yaml:"field"`
	Unit  string `yaml:"unit"`
	Rules []Rule `yaml:"rules"`
}

var (
	costs    = mustLoad(costRulesYAML)
	payloads = mustLoad(payloadRulesYAML)
	registry = map[string]*RuleSet{
		costs.Name:    costs,
		payloads.Name: payloads,
	}
)

// Costs returns the launch cost table (USD millions).
func Costs() *RuleSet { return costs }

// PayloadMasses returns the payload mass table (kg).
func PayloadMasses() *RuleSet { return payloads }

// Get returns the rule table registered under name.
func Get(name string) (*RuleSet, error) {
	rs, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("rule set %q not found (available: %s)", name, strings.Join(Names(), ", "))
	}
	return rs, nil
}

// Names returns the registered rule table names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match returns the first rule whose condition holds for s.
func (rs *RuleSet) Match(s Subject) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.When.Holds(s) {
			return r, true
		}
	}
	return Rule{}, false
}

// Holds reports whether every set predicate is true for s.
func (c Condition) Holds(s Subject) bool {
	for _, sub := range c.VehicleContains {
		if !strings.Contains(s.Vehicle, sub) {
			return false
		}
	}
	if c.VehicleEquals != "" && s.Vehicle != c.VehicleEquals {
		return false
	}
	if len(c.MissionContainsAny) > 0 && !containsAny(s.Mission, c.MissionContainsAny) {
		return false
	}
	if c.LaunchedOnOrAfter != "" && s.LaunchDate < c.LaunchedOnOrAfter {
		return false
	}
	if c.StarlinkGroupAtLeast != nil {
		g, ok := StarlinkGroup(s.Mission)
		if !ok || g < *c.StarlinkGroupAtLeast {
			return false
		}
	}
	return true
}

func (c Condition) empty() bool {
	return len(c.VehicleContains) == 0 && c.VehicleEquals == "" &&
		len(c.MissionContainsAny) == 0 && c.LaunchedOnOrAfter == "" &&
		c.StarlinkGroupAtLeast == nil
}

// String renders the condition for listings, e.g.
// `vehicle ~ "Falcon 9" and mission ~ any("CRS", "SpX")`.
func (c Condition) String() string {
	var parts []string
	for _, sub := range c.VehicleContains {
		parts = append(parts, fmt.Sprintf("vehicle ~ %q", sub))
	}
	if c.VehicleEquals != "" {
		parts = append(parts, fmt.Sprintf("vehicle = %q", c.VehicleEquals))
	}
	switch len(c.MissionContainsAny) {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("mission ~ %q", c.MissionContainsAny[0]))
	default:
		quoted := make([]string, len(c.MissionContainsAny))
		for i, m := range c.MissionContainsAny {
			quoted[i] = strconv.Quote(m)
		}
		parts = append(parts, "mission ~ any("+strings.Join(quoted, ", ")+")")
	}
	if c.LaunchedOnOrAfter != "" {
		parts = append(parts, "launch_date >= "+c.LaunchedOnOrAfter)
	}
	if c.StarlinkGroupAtLeast != nil {
		parts = append(parts, fmt.Sprintf("starlink group >= %d", *c.StarlinkGroupAtLeast))
	}
	return strings.Join(parts, " and ")
}

var starlinkGroupPattern = regexp.MustCompile(`Group (\d+)-`)

// StarlinkGroup extracts N from a "Group N-" token in a mission name. A group
// number too large for int is reported as math.MaxInt.
func StarlinkGroup(mission string) (int, bool) {
	m := starlinkGroupPattern.FindStringSubmatch(mission)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Parse decodes and validates a rule table.
func Parse(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}
	if err := rs.validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

func (rs *RuleSet) validate() error {
	if rs.Name == "" || rs.Field == "" {
		return errors.New("rule set needs a name and a field")
	}
	if len(rs.Rules) == 0 {
		return fmt.Errorf("rule set %s has no rules", rs.Name)
	}
	seen := make(map[string]bool, len(rs.Rules))
	for i, r := range rs.Rules {
		switch {
		case r.Name == "":
			return fmt.Errorf("rule set %s: rule %d has no name", rs.Name, i)
		case seen[r.Name]:
			return fmt.Errorf("rule set %s: duplicate rule %q", rs.Name, r.Name)
		case r.Value <= 0:
			return fmt.Errorf("rule set %s: rule %q needs a positive value", rs.Name, r.Name)
		case r.When.empty():
			return fmt.Errorf("rule set %s: rule %q has no condition", rs.Name, r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

func mustLoad(data []byte) *RuleSet {
	rs, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("load embedded rules: %v", err))
	}
	return rs
}
