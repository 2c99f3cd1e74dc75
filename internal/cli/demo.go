package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amercer/veclab/internal/handle"
	"github.com/amercer/veclab/internal/transform"
	"github.com/amercer/veclab/internal/vector"
)

// Shape is the polymorphic capability used by the ownership demo.
type Shape interface {
	Draw() string
}

// Square draws as a labeled square.
type Square struct {
	Side int
}

// Draw implements Shape.
func (s Square) Draw() string { return fmt.Sprintf("square(side=%d)", s.Side) }

// Circle draws as a labeled circle.
type Circle struct {
	Radius int
}

// Draw implements Shape.
func (c Circle) Draw() string { return fmt.Sprintf("circle(radius=%d)", c.Radius) }

var demoSections = []string{"errors", "vectors", "ownership", "closures"}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [errors|vectors|ownership|closures]",
		Short: "Run the guided demos",
		Long: `Walk through the four demos: recoverable error classification of
input strings, fixed-size vector arithmetic with a dimension mismatch,
exclusive vs shared ownership handles over shapes, and closures
interchangeable with function objects. With no argument, all four run
in order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := demoSections
			if len(args) == 1 {
				if !isDemoSection(args[0]) {
					return WrapExitError(ExitCommandError,
						fmt.Sprintf("unknown demo %q: must be one of %v", args[0], demoSections), nil)
				}
				sections = args[:1]
			}

			w := cmd.OutOrStdout()
			for _, s := range sections {
				fmt.Fprintf(w, "--- %s ---\n", s)
				switch s {
				case "errors":
					demoErrors(w)
				case "vectors":
					demoVectors(w)
				case "ownership":
					demoOwnership(w)
				case "closures":
					demoClosures(w)
				}
			}
			return nil
		},
	}
	return cmd
}

func isDemoSection(s string) bool {
	for _, d := range demoSections {
		if d == s {
			return true
		}
	}
	return false
}

// InputError reports a rejected input string together with the rule
// it broke.
type InputError struct {
	Code  string // OUT_OF_RANGE | INVALID_ARGUMENT
	Input string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: input %q", e.Code, e.Input)
}

// classifyInput applies the length rules: more than 10 characters is
// out of range, fewer than 5 is an invalid argument, anything in
// between is accepted and echoed back.
func classifyInput(s string) (string, error) {
	switch {
	case len(s) > 10:
		return "", &InputError{Code: "OUT_OF_RANGE", Input: s}
	case len(s) < 5:
		return "", &InputError{Code: "INVALID_ARGUMENT", Input: s}
	}
	return s, nil
}

// demoErrors classifies a few sample inputs. Rejections surface as
// recoverable errors handled right here, not process faults.
func demoErrors(w io.Writer) {
	for _, in := range []string{"hi", "just right", "definitely too long"} {
		echoed, err := classifyInput(in)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, echoed)
	}
}

// demoVectors reproduces the worked vector example: an element-wise
// product chained into an add, then a deliberate dimension mismatch.
func demoVectors(w io.Writer) {
	f := vector.Of(0.1, 0.2, 0.3)
	g := vector.Of(0.1, 0.2, 0.3)
	h := vector.Of(0.1, 0.2, 0.3, 0.5)

	prod, err := f.Hadamard(g)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	sum, err := prod.Add(f)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "(f .* g) + f = %s\n", sum)

	// g and h have different dimensions; the error is recoverable and
	// no partial vector exists.
	if _, err := g.Add(h); err != nil {
		fmt.Fprintf(w, "g + h failed: %v\n", err)
	}
}

// demoOwnership walks exclusive ownership (move, consume) and shared
// ownership (clone, use counts, finalizer on last release) over Shape.
func demoOwnership(w io.Writer) {
	owners := []*handle.Unique[Shape]{
		handle.NewUnique[Shape](Square{Side: 3}),
		handle.NewUnique[Shape](Square{Side: 4}),
		handle.NewUnique[Shape](Circle{Radius: 5}),
		handle.NewUnique[Shape](Circle{Radius: 6}),
	}

	for _, u := range owners {
		if s, ok := u.Get(); ok {
			fmt.Fprintf(w, "drawing %s\n", s.Draw())
		}
	}

	// Ownership of the second shape is consumed by a function.
	_ = handle.TakeOwnership(owners[1], func(s Shape) {
		fmt.Fprintf(w, "took ownership of %s\n", s.Draw())
	})

	// The third shape is promoted to shared ownership and handed to
	// helpers that clone it.
	sh, err := handle.Promote(owners[2], func(s Shape) {
		fmt.Fprintf(w, "finalizing %s\n", s.Draw())
	})
	if err == nil {
		sharedInspect(w, sh)
		fmt.Fprintf(w, "use_count: %d\n", sh.UseCount())
		sh.Release()
	}

	for _, u := range owners {
		s, ok := u.Get()
		if !ok {
			fmt.Fprintln(w, "the ownership has moved away")
			continue
		}
		fmt.Fprintf(w, "drawing %s\n", s.Draw())
	}
}

func sharedInspect(w io.Writer, sh *handle.Shared[Shape]) {
	cl := sh.Clone()
	defer cl.Release()

	if s, ok := cl.Get(); ok {
		fmt.Fprintf(w, "shared %s, use_count: %d\n", s.Draw(), cl.UseCount())
	}
	sharedInspect2(w, cl.Clone())
	fmt.Fprintf(w, "use_count: %d\n", cl.UseCount())
}

func sharedInspect2(w io.Writer, sh *handle.Shared[Shape]) {
	defer sh.Release()
	if s, ok := sh.Get(); ok {
		fmt.Fprintf(w, "shared %s, use_count: %d\n", s.Draw(), sh.UseCount())
	}
}

// demoClosures stores two closures and a function object in one chain
// and applies them all to the same input.
func demoClosures(w io.Writer) {
	greet := "Hello, "
	secret := 42

	// Go closures capture variables, not values; taking an explicit
	// copy is what pins the secret at 42.
	captured := secret

	chain := transform.NewChain(
		// Captures the greet variable itself.
		transform.Func(func(name string) string { return greet + name }),
		// Holds the copy, so later writes to secret are invisible.
		transform.Func(func(name string) string {
			return fmt.Sprintf("%s got the secret (%d)", name, captured)
		}),
		// A struct value works wherever the closures do.
		transform.Adder{Prefix: "Bye, "},
	)

	secret = 7

	for _, line := range chain.ApplyAll("John Doe") {
		fmt.Fprintln(w, line)
	}
}
