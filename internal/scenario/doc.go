// Package scenario provides executable demo scenarios for the vector
// operations.
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario demonstrates"
//	token: fixed-run-token        # optional, for deterministic traces
//	vectors:
//	  f: [0.1, 0.2, 0.3]
//	  g: [0.1, 0.2, 0.3]
//	steps:
//	  - op: hadamard              # add | hadamard | format
//	    a: f
//	    b: g
//	    store: fg                 # optional binding for later steps
//	    expect: [0.01, 0.04, 0.09]
//	  - op: add
//	    a: f
//	    b: h
//	    expect_error: SIZE_MISMATCH
//
// Run executes the steps in order against the named vectors and
// produces a deterministic Trace plus a pass/fail Result. A failed
// expectation records a failure and continues; a malformed scenario
// (unknown vector, unknown op) aborts the run with an error.
//
// Run tokens come from a TokenGenerator: UUIDv7Generator in normal use,
// FixedGenerator or an explicit scenario token for reproducible tests.
// RunWithGolden snapshots the trace as JSON and compares it against a
// golden file under testdata/golden.
package scenario
