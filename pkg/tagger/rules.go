package tagger

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Rule maps one trigger keyword to the tags it suggests.
type Rule struct {
	Trigger string   `yaml:"trigger"`
	Tags    []string `yaml:"tags"`
}

// Rules is an ordered ruleset. Order matters: when several triggers first
// match at the same position, suggestions keep ruleset order.
type Rules []Rule

// DefaultRules returns the built-in keyword ruleset.
func DefaultRules() Rules {
	return Rules{
		{Trigger: "meeting", Tags: []string{"meetings", "work"}},
		{Trigger: "task", Tags: []string{"tasks", "todo"}},
		{Trigger: "idea", Tags: []string{"ideas", "creativity"}},
		{Trigger: "research", Tags: []string{"research", "learning"}},
		{Trigger: "project", Tags: []string{"projects", "work"}},
	}
}

// ruleFile is the YAML document shape for user rule files.
type ruleFile struct {
	Rules Rules `yaml:"rules"`
}

// LoadRules reads additional rules from a YAML document:
//
//	rules:
//	  - trigger: standup
//	    tags: [meetings]
//
// Callers append the result to DefaultRules; user rules never replace the
// built-ins.
func LoadRules(r io.Reader) (Rules, error) {
	var f ruleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	for i, rule := range f.Rules {
		if rule.Trigger == "" {
			return nil, fmt.Errorf("rule %d has an empty trigger", i)
		}
		if len(rule.Tags) == 0 {
			return nil, fmt.Errorf("rule %d (%q) has no tags", i, rule.Trigger)
		}
	}
	return f.Rules, nil
}
