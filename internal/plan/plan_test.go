package plan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/benchcheck/internal/catalog"
	"github.com/vk/benchcheck/internal/randstate"
)

func newBenchmark(t *testing.T) *catalog.Benchmark {
	t.Helper()
	yes, no := true, false

	simulated, err := catalog.NewDataset("simulated", catalog.Grid{
		{Name: "n", Values: []cty.Value{cty.NumberIntVal(10), cty.NumberIntVal(100)}},
	}, nil)
	require.NoError(t, err)
	news20, err := catalog.NewDataset("news20", nil, &yes)
	require.NoError(t, err)
	cd, err := catalog.NewSolver("cd", nil, &no)
	require.NoError(t, err)
	sgd, err := catalog.NewSolver("sgd", nil, nil)
	require.NoError(t, err)

	return &catalog.Benchmark{
		Name:      "lasso",
		Objective: "Lasso Regression",
		Datasets:  []*catalog.Entity{simulated, news20},
		Solvers:   []*catalog.Entity{cd, sgd},
	}
}

func pairNames(pairs []Pair) [][2]string {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]string{p.Dataset.Name, p.Solver.Name})
	}
	return out
}

func TestBuild_NoFilters(t *testing.T) {
	p := Build(newBenchmark(t), Options{})

	assert.Len(t, p.Datasets, 3)
	assert.Len(t, p.Solvers, 2)
	assert.Equal(t, [][2]string{
		{"simulated[n=10]", "cd"},
		{"simulated[n=10]", "sgd"},
		{"simulated[n=100]", "cd"},
		{"simulated[n=100]", "sgd"},
		{"news20", "cd"},
		{"news20", "sgd"},
	}, pairNames(p.Pairs))
	assert.Equal(t, [][2]string{{"news20", "cd"}}, pairNames(p.Skipped()))
	assert.Len(t, p.Runnable(), 5)
	assert.False(t, p.HasSeed)
}

func TestBuild_Filters(t *testing.T) {
	p := Build(newBenchmark(t), Options{
		DatasetPatterns: []string{"n=100]"},
		SolverPatterns:  []string{"SGD"},
	})

	assert.Equal(t, [][2]string{{"simulated[n=100]", "sgd"}}, pairNames(p.Pairs))
	assert.Empty(t, p.Skipped())
}

func TestBuild_EmptyFiltersKeepEverything(t *testing.T) {
	p := Build(newBenchmark(t), Options{
		DatasetPatterns: []string{},
		SolverPatterns:  []string{},
	})

	assert.Len(t, p.Datasets, 3)
	assert.Len(t, p.Solvers, 2)
	assert.Len(t, p.Pairs, 6)
}

func TestBuild_FingerprintFollowsSeed(t *testing.T) {
	b := newBenchmark(t)

	g1, err := randstate.Normalize(7)
	require.NoError(t, err)
	g2, err := randstate.Normalize(7)
	require.NoError(t, err)

	p1 := Build(b, Options{RandomState: g1})
	p2 := Build(b, Options{RandomState: g2})

	assert.True(t, p1.HasSeed)
	assert.Equal(t, p1.Fingerprint, p2.Fingerprint)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	p := Build(newBenchmark(t), Options{RandomState: randstate.New(1)})

	require.NoError(t, Render(&buf, p))

	out := buf.String()
	assert.Contains(t, out, "Benchmark lasso (Lasso Regression)")
	assert.Contains(t, out, "Runs:              5 (1 skipped)")
	assert.Contains(t, out, "Seed fingerprint:")
	assert.Contains(t, out, "simulated[n=100]")
	assert.Contains(t, out, "skip")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := Build(&catalog.Benchmark{Name: "empty", Objective: "o"}, Options{})

	require.NoError(t, Render(&buf, p))
	assert.Contains(t, buf.String(), "Nothing to run.")
}
