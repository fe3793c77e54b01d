// Package rule models fuzzy IF-THEN rules for Mamdani inference.
//
// A Rule is an ordered list of antecedent clauses (variable IS term) joined
// by a single operator, a consequent clause and an optional weight:
//
//	IF temperature IS warm AND fan IS medium THEN speed IS medium  (weight 1)
//
// The firing strength of a rule is
//
//	And: min(clause degrees) · weight
//	Or:  max(clause degrees) · weight
//
// and is always in [0,1]. It is monotonic non-decreasing in every clause
// degree. Rules are immutable; references to variables and terms are
// validated once, when a rule base is assembled (see Validate), never while
// evaluating.
package rule
