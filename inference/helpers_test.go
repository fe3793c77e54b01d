package inference_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// table builds a piecewise-constant function from (lo,hi,degree) triples.
func table(t testing.TB, triples ...float64) membership.Function {
	t.Helper()
	fn, err := membership.New("piecewise", triples)
	require.NoError(t, err)

	return fn
}

func tri(t testing.TB, a, b, c float64) membership.Function {
	t.Helper()
	fn, err := membership.NewTriangular(a, b, c)
	require.NoError(t, err)

	return fn
}

func newVar(t testing.TB, name string, min, max, res float64, terms ...variable.Term) *variable.Variable {
	t.Helper()
	u, err := variable.NewUniverse(min, max, res)
	require.NoError(t, err)
	v, err := variable.New(name, u, terms...)
	require.NoError(t, err)

	return v
}

func newRule(t testing.TB, name, outVar, outTerm string, ifs ...string) *rule.Rule {
	t.Helper()
	var cs []rule.Clause
	for i := 0; i+1 < len(ifs); i += 2 {
		cs = append(cs, rule.Clause{Variable: ifs[i], Term: ifs[i+1]})
	}
	r, err := rule.New(rule.Clause{Variable: outVar, Term: outTerm}, rule.And, cs, rule.WithName(name))
	require.NoError(t, err)

	return r
}

// roomVariables returns the piecewise-constant room temperature (°C), fan
// setting (%) and fan speed (rpm) variables.
func roomVariables(t testing.TB) []*variable.Variable {
	temp := newVar(t, "temperature", 0, 40, 1,
		variable.Term{Name: "cold", Func: table(t, 0, 10, 1.0, 10, 20, 0.4)},
		variable.Term{Name: "warm", Func: table(t, 0, 10, 0, 10, 20, 0.6, 20, 30, 0.9, 30, 40, 0.5)},
		variable.Term{Name: "hot", Func: table(t, 0, 10, 0, 10, 20, 0, 20, 30, 0.8, 30, 40, 1.0)},
	)
	fan := newVar(t, "fan", 0, 100, 1,
		variable.Term{Name: "low", Func: table(t, 0, 20, 1.0, 21, 40, 0.3)},
		variable.Term{Name: "medium", Func: table(t, 0, 20, 0, 21, 40, 0.4, 41, 70, 0.8, 71, 100, 0.5)},
		variable.Term{Name: "high", Func: table(t, 0, 20, 0, 21, 40, 0.2, 41, 70, 0.7, 71, 100, 1.0)},
	)
	speed := newVar(t, "speed", 0, 2000, 1,
		variable.Term{Name: "low", Func: table(t, 0, 500, 1.0, 501, 1000, 0.4)},
		variable.Term{Name: "medium", Func: table(t, 0, 500, 0, 501, 1000, 0.3, 1001, 1500, 0.8, 1501, 2000, 0.5)},
		variable.Term{Name: "high", Func: table(t, 0, 500, 0, 501, 1000, 0.2, 1001, 1500, 0.6, 1501, 2000, 1.0)},
	)

	return []*variable.Variable{temp, fan, speed}
}

// roomRules returns R1..R5 of the room example.
func roomRules(t testing.TB) []*rule.Rule {
	return []*rule.Rule{
		newRule(t, "R1", "speed", "low", "temperature", "cold", "fan", "low"),
		newRule(t, "R2", "speed", "medium", "temperature", "warm", "fan", "medium"),
		newRule(t, "R3", "speed", "high", "temperature", "hot", "fan", "high"),
		newRule(t, "R4", "speed", "low", "temperature", "warm", "fan", "low"),
		newRule(t, "R5", "speed", "medium", "temperature", "hot", "fan", "medium"),
	}
}

func roomEngine(t testing.TB, opts ...inference.Option) *inference.Engine {
	t.Helper()
	eng, err := inference.Configure(roomVariables(t), roomRules(t), opts...)
	require.NoError(t, err)

	return eng
}

// fanEngine is the triangular temperature → fan speed controller.
func fanEngine(t testing.TB, opts ...inference.Option) *inference.Engine {
	t.Helper()
	temp := newVar(t, "temperature", 0, 40, 1,
		variable.Term{Name: "cool", Func: tri(t, 0, 0, 20)},
		variable.Term{Name: "warm", Func: tri(t, 15, 25, 35)},
		variable.Term{Name: "hot", Func: tri(t, 30, 40, 40)},
	)
	fan := newVar(t, "fan_speed", 0, 100, 1,
		variable.Term{Name: "slow", Func: tri(t, 0, 0, 50)},
		variable.Term{Name: "medium", Func: tri(t, 30, 50, 70)},
		variable.Term{Name: "fast", Func: tri(t, 60, 100, 100)},
	)
	eng, err := inference.Configure(
		[]*variable.Variable{temp, fan},
		[]*rule.Rule{
			newRule(t, "", "fan_speed", "slow", "temperature", "cool"),
			newRule(t, "", "fan_speed", "medium", "temperature", "warm"),
			newRule(t, "", "fan_speed", "fast", "temperature", "hot"),
		},
		opts...,
	)
	require.NoError(t, err)

	return eng
}
