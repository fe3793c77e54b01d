// SPDX-License-Identifier: MIT

package config

// Format is a rule-base document encoding.
type Format string

const (
	// FormatYAML selects gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
	// FormatTOML selects github.com/pelletier/go-toml/v2.
	FormatTOML Format = "toml"
)

// RuleBase is the decoded document: variables first, rules second.
type RuleBase struct {
	Variables []Variable `yaml:"variables" toml:"variables"`
	Rules     []Rule     `yaml:"rules" toml:"rules"`
}

// Universe bounds a variable.
type Universe struct {
	Min        float64 `yaml:"min" toml:"min"`
	Max        float64 `yaml:"max" toml:"max"`
	Resolution float64 `yaml:"resolution" toml:"resolution"`
}

// Variable declares a fuzzy variable. Default, when set on an output
// variable, is substituted when no rule targeting it fires.
type Variable struct {
	Name     string   `yaml:"name" toml:"name"`
	Universe Universe `yaml:"universe" toml:"universe"`
	Terms    []Term   `yaml:"terms" toml:"terms"`
	Default  *float64 `yaml:"default,omitempty" toml:"default,omitempty"`
}

// Term declares one linguistic term.
type Term struct {
	Name      string      `yaml:"name" toml:"name"`
	Shape     string      `yaml:"shape,omitempty" toml:"shape,omitempty"`
	Params    []float64   `yaml:"params,omitempty" toml:"params,omitempty"`
	Intervals [][]float64 `yaml:"intervals,omitempty" toml:"intervals,omitempty"`
	Points    [][]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
}

// Clause is "variable IS term".
type Clause struct {
	Variable string `yaml:"variable" toml:"variable"`
	Term     string `yaml:"term" toml:"term"`
}

// Rule declares one IF-THEN rule. Weight nil means rule.DefaultWeight.
type Rule struct {
	Name     string   `yaml:"name,omitempty" toml:"name,omitempty"`
	If       []Clause `yaml:"if" toml:"if"`
	Operator string   `yaml:"operator,omitempty" toml:"operator,omitempty"`
	Then     Clause   `yaml:"then" toml:"then"`
	Weight   *float64 `yaml:"weight,omitempty" toml:"weight,omitempty"`
}
