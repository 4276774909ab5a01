// Package testutil provides test helpers for the spade vector
// abstraction: a seeded random generator for vector-valued test data,
// and a conformance harness that checks a binding against the vector
// capability contract.
//
// Binding authors run the harness from their own tests:
//
//	func TestConformance(t *testing.T) {
//	    testutil.Conformance[float64, mylib.Vec3](t, 7.5)
//	}
package testutil
