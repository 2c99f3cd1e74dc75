package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amercer/veclab/internal/vector"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a vector expression",
		Long: `Evaluate an expression over bracketed vector literals.

Operators are + (element-wise add) and .* (element-wise product), applied
left to right with equal precedence. Operand dimensions must match; a
mismatch reports SIZE_MISMATCH and exits 1.

Example:
  veclab eval "[0.1, 0.2, 0.3] .* [0.1, 0.2, 0.3] + [0.1, 0.2, 0.3]"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, expr string, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := evalExpr(expr)
	if err != nil {
		var de *vector.DimError
		if errors.As(err, &de) && de.Code == vector.SizeMismatch {
			_ = out.Error(string(de.Code), de.Error(), nil)
			return WrapExitError(ExitFailure, "size mismatch", err)
		}
		_ = out.Error("BAD_EXPRESSION", err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot evaluate expression", err)
	}

	slog.Debug("expression evaluated", "expr", expr, "dim", result.Dim())
	return out.Success(result.String())
}

// evalExpr evaluates "literal (op literal)*" left to right. Both
// operators share one precedence level.
func evalExpr(expr string) (vector.Vector[float64], error) {
	toks, err := tokenize(expr)
	if err != nil {
		return vector.Vector[float64]{}, err
	}
	if len(toks) == 0 {
		return vector.Vector[float64]{}, fmt.Errorf("empty expression")
	}
	if len(toks)%2 == 0 {
		return vector.Vector[float64]{}, fmt.Errorf("expression must end with a vector literal")
	}

	acc, err := vector.ParseFloats(toks[0])
	if err != nil {
		return vector.Vector[float64]{}, err
	}

	for i := 1; i < len(toks); i += 2 {
		op := toks[i]
		rhs, err := vector.ParseFloats(toks[i+1])
		if err != nil {
			return vector.Vector[float64]{}, err
		}

		switch op {
		case "+":
			acc, err = acc.Add(rhs)
		case ".*":
			acc, err = acc.Hadamard(rhs)
		default:
			return vector.Vector[float64]{}, fmt.Errorf("unknown operator %q", op)
		}
		if err != nil {
			return vector.Vector[float64]{}, err
		}
	}
	return acc, nil
}

// tokenize splits an expression into alternating literal and operator
// tokens. Literals run from '[' to the next ']'.
func tokenize(expr string) ([]string, error) {
	var toks []string
	s := strings.TrimSpace(expr)
	wantLiteral := true

	for len(s) > 0 {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}

		if wantLiteral {
			if s[0] != '[' {
				return nil, fmt.Errorf("expected a vector literal at %q", s)
			}
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return nil, fmt.Errorf("unclosed vector literal at %q", s)
			}
			toks = append(toks, s[:end+1])
			s = s[end+1:]
		} else {
			end := strings.IndexAny(s, " \t[")
			if end < 0 {
				end = len(s)
			}
			toks = append(toks, s[:end])
			s = s[end:]
		}
		wantLiteral = !wantLiteral
	}

	return toks, nil
}
