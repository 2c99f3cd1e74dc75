package scenario

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"golang.org/x/text/unicode/norm"
)

// TraceSnapshot is the JSON shape compared against golden files.
type TraceSnapshot struct {
	Scenario string  `json:"scenario"`
	Token    string  `json:"token,omitempty"`
	Trace    []Event `json:"trace"`
}

// Snapshot marshals the result's trace as indented JSON. Field order
// is fixed by the struct definitions, so output is deterministic.
func Snapshot(res *Result) ([]byte, error) {
	snap := TraceSnapshot{
		Scenario: res.Name,
		Token:    res.Token,
		Trace:    res.Trace,
	}
	return json.MarshalIndent(snap, "", "  ")
}

// RunWithGolden runs the scenario and compares its trace against
// testdata/golden/<name>.golden. The filename derives from the
// NFC-normalized scenario name so that names containing combining
// characters map to the same fixture on every filesystem.
//
// Regenerate golden files with:
//
//	go test ./internal/scenario -update
func RunWithGolden(t *testing.T, sc *Scenario, opts Options) *Result {
	t.Helper()

	res, err := Run(sc, opts)
	if err != nil {
		t.Fatalf("running scenario %s: %v", sc.Name, err)
	}

	data, err := Snapshot(res)
	if err != nil {
		t.Fatalf("snapshotting scenario %s: %v", sc.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, norm.NFC.String(sc.Name), data)

	return res
}
