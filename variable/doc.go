// Package variable defines fuzzy variables: a named universe of discourse
// carrying uniquely named linguistic terms.
//
// A Universe is a bounded numeric domain [Min,Max] with a Resolution used
// for discretized integration. A Variable binds terms (name + membership
// function) to exactly one universe and fuzzifies crisp values:
//
//	u, _ := variable.NewUniverse(0, 40, 1)
//	temp, _ := variable.New("temperature", u,
//		variable.Term{Name: "cool", Func: cool},
//		variable.Term{Name: "warm", Func: warm},
//	)
//	deg := temp.Fuzzify(22) // {"cool": 0, "warm": 0.7}
//
// Fuzzify clamps out-of-range inputs to the nearest bound: membership
// functions are well defined outside their support, so an out-of-range
// reading degrades gracefully instead of failing.
//
// Variables are immutable after New and safe for concurrent use.
package variable
