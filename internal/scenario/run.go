package scenario

import (
	"errors"
	"fmt"

	"github.com/amercer/veclab/internal/vector"
)

// Tolerance is the element-wise comparison tolerance for expected
// result vectors.
const Tolerance = 1e-9

// Event is one entry in a scenario trace. Field order matches the
// JSON snapshot layout used for golden comparison.
type Event struct {
	Seq      int      `json:"seq"`
	Op       string   `json:"op"`
	Operands []string `json:"operands"`
	Result   string   `json:"result,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Name  string
	Token string
	Pass  bool

	// Failures lists expectation violations, one message per step
	// that disagreed with its expectation.
	Failures []string

	// Trace records what actually happened, step by step.
	Trace []Event
}

// Options configures a run.
type Options struct {
	// Tokens supplies run tokens. Defaults to UUIDv7Generator.
	// Ignored when the scenario fixes its own token.
	Tokens TokenGenerator
}

// Run executes the scenario's steps in order.
//
// A step whose outcome disagrees with its expectation records a
// failure and execution continues; structural problems (unknown
// vector name, invalid scenario) abort with an error and no Result.
func Run(sc *Scenario, opts Options) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	token := sc.Token
	if token == "" {
		gen := opts.Tokens
		if gen == nil {
			gen = UUIDv7Generator{}
		}
		token = gen.Generate()
	}

	env := make(map[string]vector.Vector[float64], len(sc.Vectors))
	for name, elems := range sc.Vectors {
		env[name] = vector.Of(elems...)
	}

	res := &Result{Name: sc.Name, Token: token, Pass: true}

	for i, st := range sc.Steps {
		ev := Event{Seq: i + 1, Op: st.Op}

		a, ok := env[st.A]
		if !ok {
			return nil, fmt.Errorf("step %d: unknown vector %q", i+1, st.A)
		}

		switch st.Op {
		case "format":
			ev.Operands = []string{st.A}
			rendered := a.String()
			ev.Result = rendered
			res.Trace = append(res.Trace, ev)
			if st.ExpectText != "" && rendered != st.ExpectText {
				res.fail("step %d: format %s: got %q, want %q", i+1, st.A, rendered, st.ExpectText)
			}

		case "add", "hadamard":
			b, ok := env[st.B]
			if !ok {
				return nil, fmt.Errorf("step %d: unknown vector %q", i+1, st.B)
			}
			ev.Operands = []string{st.A, st.B}

			var out vector.Vector[float64]
			var err error
			if st.Op == "add" {
				out, err = a.Add(b)
			} else {
				out, err = a.Hadamard(b)
			}

			if err != nil {
				ev.Error = errCode(err)
				res.Trace = append(res.Trace, ev)
				if st.ExpectError == "" {
					res.fail("step %d: %s(%s, %s) failed: %v", i+1, st.Op, st.A, st.B, err)
				} else if st.ExpectError != ev.Error {
					res.fail("step %d: expected error %s, got %s", i+1, st.ExpectError, ev.Error)
				}
				continue
			}

			ev.Result = out.String()
			res.Trace = append(res.Trace, ev)

			if st.ExpectError != "" {
				res.fail("step %d: expected error %s, got result %s", i+1, st.ExpectError, out)
				continue
			}
			if len(st.Expect) > 0 && !vector.ApproxEqual(out, vector.Of(st.Expect...), Tolerance) {
				res.fail("step %d: %s(%s, %s) = %s, want %v", i+1, st.Op, st.A, st.B, out, st.Expect)
			}
			if st.Store != "" {
				env[st.Store] = out
			}
		}
	}

	return res, nil
}

func (r *Result) fail(format string, args ...any) {
	r.Pass = false
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// errCode extracts the structured code from a vector error, falling
// back to the error text.
func errCode(err error) string {
	var de *vector.DimError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return err.Error()
}
