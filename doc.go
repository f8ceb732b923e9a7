// Package xlite is an extra light unit-testing harness which is embedded
// into the program under test.  There is no separate test runner
// process and no manifest listing the tests: declaring a test case is
// all it takes for the case to run.
//
//	import "github.com/slukits/xlite"
//
//	var _ = xlite.Test("Sqrt", "of_sixteen_is_four", func(t *xlite.T) {
//	    xlite.CheckApproxEqual(t, 4.0, math.Sqrt(16), 1e-15)
//	})
//
//	func main() { cli.Main() }
//
// A case is declared by assigning the return value of Test, Register
// or AddSuite to a package level variable.  Go initializes package level
// variables before main is called, i.e. every declared case has linked
// itself into the Default registry before any case runs.  The order in
// which cases of different packages and files register is up to the go
// toolchain; cases must not depend on it nor on each other.  Within a
// file a registry runs its cases in the reverse order of their
// declaration since each case is inserted at the head of the registry's
// list.
//
// Cases may be declared in three ways:
//
//   - Test(group, name, func(*T)) declares a case named "group/name",
//   - Register(name, Runner) declares a case whose body is a Runner
//     implementation,
//   - AddSuite(&MySuite{}) declares a case for each exported method of
//     MySuite with a single *T argument.
//
// A case's body asserts through the *T it is given: Fail, Check and the
// generic functions CheckEqual, CheckLE, CheckLT, CheckGT, CheckGE,
// CheckApproxEqual, CheckText, CheckBytes and CheckDeepEqual.  Each
// assertion records the source location it was called from.  A failing
// assertion doesn't stop its case, it is reported as a Failure to the
// Result of the run and the body continues.  A panic in a body on the
// other hand is not recovered by the harness: it stops the whole run.
//
// A Result decides what reporting a failure means.  The default
// Counter prints every failure as
//
//	<file>:<line>: test "<message>" failed
//
// and a summary line at the end of a run.  A Collector keeps the
// failures instead which is how the harness tests itself.  The package
// cli provides a ready to use main function with name filters.
package xlite
