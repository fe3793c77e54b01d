package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy"
	"github.com/katalvlaran/lvfuzzy/config"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/relation"
	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

func load(t *testing.T, name string) *config.RuleBase {
	t.Helper()
	rb, err := config.Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return rb
}

func build(t *testing.T, name string, opts ...inference.Option) *inference.Engine {
	t.Helper()
	eng, err := load(t, name).Build(opts...)
	require.NoError(t, err)

	return eng
}

func TestLoad_Room(t *testing.T) {
	eng := build(t, "room.yaml")
	assert.Equal(t, []string{"R1", "R2", "R3", "R4", "R5"}, eng.RuleNames())

	out, err := eng.Infer(map[string]float64{"temperature": 22, "fan": 60})
	require.NoError(t, err)
	assert.InDelta(t, 1361.61, out["speed"], 0.01)

	_, err = eng.Infer(map[string]float64{"temperature": 5, "fan": 50})
	assert.ErrorIs(t, err, inference.ErrZeroMembershipArea)
}

func TestLoad_Fan(t *testing.T) {
	eng := build(t, "fan.yaml")
	assert.Equal(t, []string{"R1", "R2", "R3"}, eng.RuleNames())

	for temp, want := range map[float64]float64{0: 50.0 / 3, 25: 50, 40: 260.0 / 3, 90: 260.0 / 3} {
		out, err := eng.Infer(map[string]float64{"temperature": temp})
		require.NoError(t, err)
		assert.InDelta(t, want, out["fan_speed"], 1e-6, "temperature %g", temp)
	}
}

func TestLoad_HeatingTOML(t *testing.T) {
	rb := load(t, "heating.toml")
	require.Len(t, rb.Variables, 2)
	require.NotNil(t, rb.Variables[1].Default)
	assert.Equal(t, 0.0, *rb.Variables[1].Default)

	eng, err := rb.Build()
	require.NoError(t, err)

	// cold=0.8 → medium, mild=0.4 → low
	out, err := eng.Infer(map[string]float64{"temperature": 22})
	require.NoError(t, err)
	assert.InDelta(t, 140.0/3, out["heating_power"], 1e-6)

	out, err = eng.Infer(map[string]float64{"temperature": 100})
	require.NoError(t, err)
	assert.InDelta(t, 50.0/3, out["heating_power"], 1e-6)
}

func TestLoad_RestaurantVariablesOnly(t *testing.T) {
	rb := load(t, "restaurant.yaml")

	_, err := rb.Build()
	assert.ErrorIs(t, err, inference.ErrEmptyRuleBase)

	vars, err := rb.BuildVariables()
	require.NoError(t, err)
	require.Len(t, vars, 2)
	rep := relation.Relate(vars[0], 45, vars[1], 7.5)
	assert.InDelta(t, 0.375, rep.ProjA["moderate"], 1e-12)
	assert.InDelta(t, 1.0/6, rep.ProjB["average"], 1e-12)
}

func TestBuild_DefaultBecomesFallback(t *testing.T) {
	doc := `
variables:
  - name: in
    universe: {min: 0, max: 10, resolution: 1}
    terms:
      - {name: low, points: [[0, 1], [5, 0]]}
  - name: out
    universe: {min: 0, max: 10, resolution: 1}
    default: 2.5
    terms:
      - {name: high, shape: gaussian, params: [8, 1]}
rules:
  - if: [{variable: in, term: low}]
    then: {variable: out, term: high}
    weight: 0.5
`
	rb, err := config.Parse([]byte(doc), config.FormatYAML)
	require.NoError(t, err)
	eng, err := rb.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.5, eng.Rules()[0].Weight())

	out, err := eng.Infer(map[string]float64{"in": 9})
	require.NoError(t, err)
	assert.Equal(t, 2.5, out["out"])

	// Caller options win over document defaults.
	eng, err = rb.Build(inference.WithFallback("out", 7))
	require.NoError(t, err)
	out, err = eng.Infer(map[string]float64{"in": 9})
	require.NoError(t, err)
	assert.Equal(t, 7.0, out["out"])
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		format config.Format
		err    error
	}{
		{"yaml unknown key", "variables:\n  - name: x\n    universe: {min: 0, max: 1, resolutoin: 1}\n", config.FormatYAML, config.ErrMalformed},
		{"yaml syntax", "variables: [", config.FormatYAML, config.ErrMalformed},
		{"toml unknown key", "[[variables]]\nname = \"x\"\ncolour = \"red\"\n", config.FormatTOML, config.ErrMalformed},
		{"toml syntax", "[[variables]\n", config.FormatTOML, config.ErrMalformed},
		{"format", "", config.Format("json"), config.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rb, err := config.Parse([]byte(tc.doc), tc.format)
			assert.Nil(t, rb)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, lvfuzzy.ErrConfiguration)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	rb, err := config.Parse(nil, config.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, rb.Variables)
}

func TestBuild_Errors(t *testing.T) {
	base := func() *config.RuleBase {
		return &config.RuleBase{
			Variables: []config.Variable{
				{Name: "in", Universe: config.Universe{Min: 0, Max: 10, Resolution: 1}, Terms: []config.Term{
					{Name: "low", Shape: "triangular", Params: []float64{0, 0, 5}},
				}},
				{Name: "out", Universe: config.Universe{Min: 0, Max: 10, Resolution: 1}, Terms: []config.Term{
					{Name: "high", Shape: "triangular", Params: []float64{5, 10, 10}},
				}},
			},
			Rules: []config.Rule{
				{If: []config.Clause{{Variable: "in", Term: "low"}}, Then: config.Clause{Variable: "out", Term: "high"}},
			},
		}
	}
	_, err := base().Build()
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(rb *config.RuleBase)
		err    error
	}{
		{"universe", func(rb *config.RuleBase) { rb.Variables[0].Universe.Resolution = 0 }, variable.ErrInvalidUniverse},
		{"unknown shape", func(rb *config.RuleBase) { rb.Variables[0].Terms[0].Shape = "bell" }, membership.ErrUnknownShape},
		{"param count", func(rb *config.RuleBase) { rb.Variables[0].Terms[0].Params = []float64{1, 2} }, membership.ErrInvalidShape},
		{"no shape", func(rb *config.RuleBase) { rb.Variables[0].Terms[0].Shape = "" }, config.ErrMalformed},
		{"interval width", func(rb *config.RuleBase) {
			rb.Variables[0].Terms[0] = config.Term{Name: "low", Intervals: [][]float64{{0, 5}}}
		}, config.ErrMalformed},
		{"point width", func(rb *config.RuleBase) {
			rb.Variables[0].Terms[0] = config.Term{Name: "low", Points: [][]float64{{0, 1, 2}}}
		}, config.ErrMalformed},
		{"duplicate term", func(rb *config.RuleBase) {
			rb.Variables[0].Terms = append(rb.Variables[0].Terms, rb.Variables[0].Terms[0])
		}, variable.ErrDuplicateTerm},
		{"operator", func(rb *config.RuleBase) { rb.Rules[0].Operator = "xor" }, rule.ErrUnknownOperator},
		{"weight", func(rb *config.RuleBase) { w := 1.5; rb.Rules[0].Weight = &w }, rule.ErrInvalidWeight},
		{"empty antecedent", func(rb *config.RuleBase) { rb.Rules[0].If = nil }, rule.ErrEmptyAntecedent},
		{"unknown term", func(rb *config.RuleBase) { rb.Rules[0].Then.Term = "medium" }, rule.ErrUnknownTerm},
		{"default on input", func(rb *config.RuleBase) { d := 1.0; rb.Variables[0].Default = &d }, inference.ErrUnknownFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rb := base()
			tc.mutate(rb)
			eng, err := rb.Build()
			assert.Nil(t, eng)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, lvfuzzy.ErrConfiguration)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]config.Format{
		"a.yaml": config.FormatYAML, "b.YML": config.FormatYAML, "dir/c.toml": config.FormatTOML,
	} {
		got, err := config.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := config.FormatFromPath("rules.json")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load("rules.ini")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
	_, err = config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestMarshal_ConvertYAMLToTOML converts a rule base and checks the
// converted engine infers the same values.
func TestMarshal_ConvertYAMLToTOML(t *testing.T) {
	rb := load(t, "room.yaml")
	data, err := rb.Marshal(config.FormatTOML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "room.toml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	converted, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, rb, converted)

	eng, err := converted.Build()
	require.NoError(t, err)
	out, err := eng.Infer(map[string]float64{"temperature": 22, "fan": 60})
	require.NoError(t, err)
	assert.InDelta(t, 1361.61, out["speed"], 0.01)

	_, err = rb.Marshal(config.Format("ini"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}
