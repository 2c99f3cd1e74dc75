// Package transform defines a polymorphic string-transform capability
// and an ordered chain of transforms.
//
// A Transform is anything satisfying Apply(string) string. Closures
// adapt via the Func type regardless of what they capture; Adder is a
// plain struct satisfying the same interface, so function objects and
// closures are interchangeable in a Chain.
package transform

// Transform is the callable capability: a pure mapping from one string
// to another.
type Transform interface {
	Apply(in string) string
}

// Func adapts an ordinary function or closure to Transform.
type Func func(string) string

// Apply implements Transform.
func (f Func) Apply(in string) string { return f(in) }

// Adder is a function object that prefixes a fixed string. It carries
// its state as a struct field rather than a closure capture.
type Adder struct {
	Prefix string
}

// Apply implements Transform.
func (a Adder) Apply(in string) string { return a.Prefix + in }

// Chain is an ordered sequence of transforms. Order is significant and
// preserved; there is no keyed lookup.
type Chain struct {
	transforms []Transform
}

// NewChain creates a chain from the given transforms, in order.
func NewChain(ts ...Transform) *Chain {
	c := &Chain{}
	for _, t := range ts {
		c.Append(t)
	}
	return c
}

// Append adds a transform to the end of the chain.
func (c *Chain) Append(t Transform) {
	c.transforms = append(c.transforms, t)
}

// Len returns the number of transforms in the chain.
func (c *Chain) Len() int { return len(c.transforms) }

// ApplyAll applies each transform to in independently, returning one
// output per transform in chain order. Transforms are not composed:
// every transform sees the original input.
func (c *Chain) ApplyAll(in string) []string {
	out := make([]string, 0, len(c.transforms))
	for _, t := range c.transforms {
		out = append(out, t.Apply(in))
	}
	return out
}

// Compose threads in through the chain, feeding each transform's
// output to the next, and returns the final result.
func (c *Chain) Compose(in string) string {
	for _, t := range c.transforms {
		in = t.Apply(in)
	}
	return in
}
