// SPDX-License-Identifier: MIT

// Package relation joins two independently fuzzified variables into a fuzzy
// relation and marginalizes it back onto either axis.
//
// 🔗 Cylindrical extension:
//
//	joint(a, b) = min(A[a], B[b])     for every term a of A, b of B
//
// 📐 Projection (supremum over the other axis):
//
//	projA(a) = max_b joint(a, b)
//	projB(b) = max_a joint(a, b)
//
// Projection after extension never exceeds the original membership:
// projA(a) <= A[a], with equality for every a as soon as some term of B has
// degree 1.
//
// Relations are diagnostic. They explain how two criteria combine (price
// against quality, temperature against humidity) and play no part in the
// inference pipeline.
//
// Usage:
//
//	price := priceVar.Fuzzify(45)
//	quality := qualityVar.Fuzzify(7.5)
//	rep := relation.Analyze(price, quality)
//	for _, p := range rep.Joint.Support() {
//		fmt.Println(p.A, p.B, rep.Joint.Degree(p.A, p.B))
//	}
//
// Complexity: O(|A|·|B|) time and memory for extension and for each projection.
package relation
