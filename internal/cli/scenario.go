package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amercer/veclab/internal/scenario"
)

// ScenarioReport is the JSON payload for a single scenario run.
type ScenarioReport struct {
	Name     string           `json:"name"`
	Token    string           `json:"token"`
	Pass     bool             `json:"pass"`
	Failures []string         `json:"failures,omitempty"`
	Trace    []scenario.Event `json:"trace"`
}

// NewScenarioCommand creates the scenario command.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <file-or-dir>",
		Short: "Run YAML scenarios",
		Long: `Load and execute one scenario file, or every *.yaml scenario in a
directory. Exits 1 when any scenario records an expectation failure.

Example:
  veclab scenario demos/elementwise_basics.yaml
  veclab scenario demos/ --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runScenarios(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	scenarios, err := loadScenarios(path)
	if err != nil {
		_ = out.Error("LOAD_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading scenarios", err)
	}
	slog.Debug("scenarios loaded", "path", path, "count", len(scenarios))

	reports := make([]ScenarioReport, 0, len(scenarios))
	allPass := true
	for _, sc := range scenarios {
		res, err := scenario.Run(sc, scenario.Options{})
		if err != nil {
			_ = out.Error("RUN_FAILED", err.Error(), nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("running scenario %s", sc.Name), err)
		}
		if !res.Pass {
			allPass = false
		}
		reports = append(reports, ScenarioReport{
			Name:     res.Name,
			Token:    res.Token,
			Pass:     res.Pass,
			Failures: res.Failures,
			Trace:    res.Trace,
		})
	}

	if opts.Format == "json" {
		if err := out.Success(reports); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, r := range reports {
			status := "PASS"
			if !r.Pass {
				status = "FAIL"
			}
			fmt.Fprintf(w, "%s  %s (token %s)\n", status, r.Name, r.Token)
			for _, f := range r.Failures {
				fmt.Fprintf(w, "      %s\n", f)
			}
		}
	}

	if !allPass {
		return NewExitError(ExitFailure, "one or more scenarios failed")
	}
	return nil
}

func loadScenarios(path string) ([]*scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return scenario.LoadDir(path)
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	return []*scenario.Scenario{sc}, nil
}
