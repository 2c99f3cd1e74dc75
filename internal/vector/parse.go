package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloats parses a vector literal in the String() format:
// "[0.1, 0.2, 0.3]". Whitespace around elements is ignored and "[]"
// parses to the zero-dimension vector. Malformed input fails with
// BadLiteral.
func ParseFloats(s string) (Vector[float64], error) {
	body, ok := trimBrackets(s)
	if !ok {
		return Vector[float64]{}, badLiteral("parse", fmt.Sprintf("literal %q is not bracketed", s))
	}
	if body == "" {
		return Of[float64](), nil
	}

	parts := strings.Split(body, ",")
	elems := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Vector[float64]{}, badLiteral("parse", fmt.Sprintf("empty element in literal %q", s))
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Vector[float64]{}, badLiteral("parse", fmt.Sprintf("element %q is not a number", p))
		}
		elems = append(elems, f)
	}
	return Of(elems...), nil
}

func trimBrackets(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(s[1 : len(s)-1]), true
}
