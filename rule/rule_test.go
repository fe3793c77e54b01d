package rule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy"
	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// termSet is a test-side stand-in for a fuzzy variable.
type termSet map[string]bool

func (ts termSet) HasTerm(name string) bool { return ts[name] }

func lookupOf(vars map[string]termSet) rule.Lookup {
	return func(name string) (rule.TermSet, bool) {
		ts, ok := vars[name]
		return ts, ok
	}
}

var fanVars = map[string]termSet{
	"temperature": {"cold": true, "warm": true, "hot": true},
	"fan":         {"low": true, "medium": true, "high": true},
	"speed":       {"low": true, "medium": true, "high": true},
}

func clauses(pairs ...string) []rule.Clause {
	out := make([]rule.Clause, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, rule.Clause{Variable: pairs[i], Term: pairs[i+1]})
	}

	return out
}

func mustRule(t *testing.T, then rule.Clause, op rule.Operator, ifs []rule.Clause, opts ...rule.Option) *rule.Rule {
	t.Helper()
	r, err := rule.New(then, op, ifs, opts...)
	require.NoError(t, err)

	return r
}

// TestFiringStrength_Scenario reproduces the three firing rules of the
// room-temperature/fan-setting example at T=22, F=60.
func TestFiringStrength_Scenario(t *testing.T) {
	fz := map[string]variable.Degrees{
		"temperature": {"cold": 0, "warm": 0.9, "hot": 0.8},
		"fan":         {"low": 0, "medium": 0.8, "high": 0.7},
	}
	r2 := mustRule(t, rule.Clause{Variable: "speed", Term: "medium"}, rule.And, clauses("temperature", "warm", "fan", "medium"), rule.WithName("R2"))
	r5 := mustRule(t, rule.Clause{Variable: "speed", Term: "medium"}, rule.And, clauses("temperature", "hot", "fan", "medium"), rule.WithName("R5"))
	r3 := mustRule(t, rule.Clause{Variable: "speed", Term: "high"}, rule.And, clauses("temperature", "hot", "fan", "high"), rule.WithName("R3"))
	r1 := mustRule(t, rule.Clause{Variable: "speed", Term: "low"}, rule.And, clauses("temperature", "cold", "fan", "low"), rule.WithName("R1"))

	assert.Equal(t, 0.8, r2.FiringStrength(fz))
	assert.Equal(t, 0.8, r5.FiringStrength(fz))
	assert.Equal(t, 0.7, r3.FiringStrength(fz))
	assert.Equal(t, 0.0, r1.FiringStrength(fz))
}

func TestFiringStrength_OrAndWeight(t *testing.T) {
	fz := map[string]variable.Degrees{
		"temperature": {"cold": 0.2, "warm": 0.6},
	}
	or := mustRule(t, rule.Clause{Variable: "speed", Term: "low"}, rule.Or, clauses("temperature", "cold", "temperature", "warm"))
	assert.Equal(t, 0.6, or.FiringStrength(fz))

	weighted := mustRule(t, rule.Clause{Variable: "speed", Term: "low"}, rule.Or,
		clauses("temperature", "cold", "temperature", "warm"), rule.WithWeight(0.5))
	assert.InDelta(t, 0.3, weighted.FiringStrength(fz), 1e-12)

	missing := mustRule(t, rule.Clause{Variable: "speed", Term: "low"}, rule.And, clauses("fan", "low"))
	assert.Equal(t, 0.0, missing.FiringStrength(fz), "absent degrees count as 0")
}

// TestFiringStrength_Monotonic raises one clause degree at a time and checks
// the firing strength never decreases, for both operators.
func TestFiringStrength_Monotonic(t *testing.T) {
	ifs := clauses("a", "x", "b", "y", "c", "z")
	for _, op := range []rule.Operator{rule.And, rule.Or} {
		r := mustRule(t, rule.Clause{Variable: "out", Term: "t"}, op, ifs, rule.WithWeight(0.9))
		base := map[string]float64{"a": 0.3, "b": 0.6, "c": 0.45}
		for _, bump := range []string{"a", "b", "c"} {
			prev := -1.0
			for step := 0; step <= 10; step++ {
				deg := map[string]float64{"a": base["a"], "b": base["b"], "c": base["c"]}
				deg[bump] = float64(step) / 10
				fz := map[string]variable.Degrees{
					"a": {"x": deg["a"]}, "b": {"y": deg["b"]}, "c": {"z": deg["c"]},
				}
				s := r.FiringStrength(fz)
				assert.GreaterOrEqual(t, s, prev, "%s: raising %s", op, bump)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 1.0)
				prev = s
			}
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	then := rule.Clause{Variable: "speed", Term: "low"}
	cases := []struct {
		name string
		err  error
		do   func() error
	}{
		{"no clauses", rule.ErrEmptyAntecedent, func() error {
			_, err := rule.New(then, rule.And, nil)
			return err
		}},
		{"weight>1", rule.ErrInvalidWeight, func() error {
			_, err := rule.New(then, rule.And, clauses("fan", "low"), rule.WithWeight(1.2))
			return err
		}},
		{"weight<0", rule.ErrInvalidWeight, func() error {
			_, err := rule.New(then, rule.And, clauses("fan", "low"), rule.WithWeight(-0.1))
			return err
		}},
		{"weight NaN", rule.ErrInvalidWeight, func() error {
			_, err := rule.New(then, rule.And, clauses("fan", "low"), rule.WithWeight(math.NaN()))
			return err
		}},
		{"bad operator", rule.ErrUnknownOperator, func() error {
			_, err := rule.New(then, rule.Operator(7), clauses("fan", "low"))
			return err
		}},
		{"empty clause", rule.ErrInvalidClause, func() error {
			_, err := rule.New(then, rule.And, clauses("fan", ""))
			return err
		}},
		{"empty consequent", rule.ErrInvalidClause, func() error {
			_, err := rule.New(rule.Clause{}, rule.And, clauses("fan", "low"))
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.do()
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, lvfuzzy.ErrConfiguration)
		})
	}
}

func TestValidate(t *testing.T) {
	lookup := lookupOf(fanVars)

	ok := mustRule(t, rule.Clause{Variable: "speed", Term: "high"}, rule.And, clauses("temperature", "hot", "fan", "high"))
	assert.NoError(t, ok.Validate(lookup))

	badVar := mustRule(t, rule.Clause{Variable: "speed", Term: "high"}, rule.And, clauses("humidity", "high"))
	assert.ErrorIs(t, badVar.Validate(lookup), rule.ErrUnknownVariable)

	badTerm := mustRule(t, rule.Clause{Variable: "speed", Term: "high"}, rule.And, clauses("fan", "turbo"))
	assert.ErrorIs(t, badTerm.Validate(lookup), rule.ErrUnknownTerm)

	badThen := mustRule(t, rule.Clause{Variable: "speed", Term: "ludicrous"}, rule.And, clauses("fan", "high"))
	err := badThen.Validate(lookup)
	assert.ErrorIs(t, err, rule.ErrUnknownTerm)
	assert.ErrorIs(t, err, lvfuzzy.ErrConfiguration)
}

func TestParseOperator(t *testing.T) {
	for in, want := range map[string]rule.Operator{
		"": rule.And, "and": rule.And, "AND": rule.And, "&&": rule.And, "min": rule.And,
		"or": rule.Or, "Or": rule.Or, "||": rule.Or, "max": rule.Or,
	} {
		got, err := rule.ParseOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := rule.ParseOperator("xor")
	assert.ErrorIs(t, err, rule.ErrUnknownOperator)
}

func TestString(t *testing.T) {
	r := mustRule(t, rule.Clause{Variable: "speed", Term: "medium"}, rule.And, clauses("temperature", "warm", "fan", "medium"))
	assert.Equal(t, "IF temperature IS warm AND fan IS medium THEN speed IS medium", r.String())

	w := mustRule(t, rule.Clause{Variable: "speed", Term: "low"}, rule.Or, clauses("fan", "low", "fan", "medium"), rule.WithWeight(0.5))
	assert.Equal(t, "IF fan IS low OR fan IS medium THEN speed IS low [0.5]", w.String())
	assert.Equal(t, 0.5, w.Weight())
	assert.Equal(t, rule.Or, w.Operator())
	assert.Len(t, w.Antecedents(), 2)
	assert.Equal(t, "speed", w.Consequent().Variable)
}
