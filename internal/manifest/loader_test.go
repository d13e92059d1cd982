package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/benchcheck/internal/catalog"
)

const lassoManifest = `
name = "lasso"

objective "Lasso Regression" {}

dataset "simulated" {
  parameter "n_samples, n_features" {
    values = [[100, 10], [1000, 50]]
  }
  parameter "rho" {
    values = [0, 0.5]
  }
}

dataset "news20" {
  is_sparse = true
}

solver "cd" {
  support_sparse = false

  parameter "tol" {
    values = [1e-4]
  }
}

solver "sgd" {
  parameter "lr" {
    values = ["auto", 0.1]
  }
}
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	// --- Arrange ---
	path := writeManifest(t, t.TempDir(), "benchmark.hcl", lassoManifest)

	// --- Act ---
	b, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "lasso", b.Name)
	assert.Equal(t, "Lasso Regression", b.Objective)
	require.Len(t, b.Datasets, 2)
	require.Len(t, b.Solvers, 2)

	assert.Equal(t, []string{
		"simulated[n_samples=100,n_features=10,rho=0]",
		"simulated[n_samples=100,n_features=10,rho=0.5]",
		"simulated[n_samples=1000,n_features=50,rho=0]",
		"simulated[n_samples=1000,n_features=50,rho=0.5]",
		"news20",
	}, catalog.ExpandAll(b.Datasets))
	assert.Equal(t, []string{
		"cd[tol=0.0001]",
		"sgd[lr=auto]",
		"sgd[lr=0.1]",
	}, catalog.ExpandAll(b.Solvers))

	assert.False(t, b.Datasets[0].Sparse)
	assert.True(t, b.Datasets[1].Sparse)
	assert.False(t, b.Solvers[0].SupportsSparse)
	assert.True(t, b.Solvers[1].SupportsSparse)
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ridge")
	writeManifest(t, root, "objective.hcl", `objective "Ridge" {}`)
	writeManifest(t, root, "datasets/simulated.hcl", `dataset "simulated" {}`)
	writeManifest(t, root, "solvers/a.hcl", `solver "lbfgs" {}`)
	writeManifest(t, root, "solvers/b.hcl", `solver "sag" {}`)
	writeManifest(t, root, "README.md", "not a manifest")

	b, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, "ridge", b.Name)
	assert.Equal(t, "Ridge", b.Objective)
	assert.Equal(t, []string{"simulated"}, catalog.ExpandAll(b.Datasets))
	assert.Equal(t, []string{"lbfgs", "sag"}, catalog.ExpandAll(b.Solvers))
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		target   error
		contains string
	}{
		{
			name:   "no manifest",
			files:  map[string]string{"README.md": "hello"},
			target: ErrNoManifest,
		},
		{
			name:   "missing objective",
			files:  map[string]string{"b.hcl": `dataset "d" {}`},
			target: ErrMissingObjective,
		},
		{
			name: "two objectives",
			files: map[string]string{
				"a.hcl": `objective "A" {}`,
				"b.hcl": `objective "B" {}`,
			},
			target: ErrMultipleObjectives,
		},
		{
			name: "duplicate solver",
			files: map[string]string{
				"b.hcl": "objective \"o\" {}\nsolver \"s\" {}\nsolver \"s\" {}",
			},
			target: ErrDuplicateEntity,
		},
		{
			name: "values not a list",
			files: map[string]string{
				"b.hcl": "objective \"o\" {}\nsolver \"s\" {\n  parameter \"lr\" {\n    values = 0.1\n  }\n}",
			},
			target: ErrInvalidValues,
		},
		{
			name: "grouped arity mismatch",
			files: map[string]string{
				"b.hcl": "objective \"o\" {}\ndataset \"d\" {\n  parameter \"a, b\" {\n    values = [[1, 2, 3]]\n  }\n}",
			},
			target: catalog.ErrGroupArity,
		},
		{
			name: "duplicate parameter",
			files: map[string]string{
				"b.hcl": "objective \"o\" {}\ndataset \"d\" {\n  parameter \"a\" {\n    values = [1]\n  }\n  parameter \"a\" {\n    values = [2]\n  }\n}",
			},
			target: catalog.ErrDuplicateParameter,
		},
		{
			name: "duplicate values",
			files: map[string]string{
				"b.hcl": "objective \"o\" {}\nsolver \"s\" {\n  parameter \"a\" {\n    values = [1, \"1\", 1]\n  }\n}",
			},
			target: catalog.ErrDuplicateValue,
		},
		{
			name:     "syntax error",
			files:    map[string]string{"b.hcl": "objective \"o\" {"},
			contains: "failed to parse",
		},
		{
			name:     "solver flag on dataset",
			files:    map[string]string{"b.hcl": "objective \"o\" {}\ndataset \"d\" {\n  support_sparse = true\n}"},
			contains: "failed to decode",
		},
		{
			name:     "unknown block",
			files:    map[string]string{"b.hcl": "objective \"o\" {}\nmetric \"m\" {}"},
			contains: "failed to decode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tc.files {
				writeManifest(t, root, name, content)
			}

			b, err := NewLoader().Load(context.Background(), root)
			require.Error(t, err)
			assert.Nil(t, b)

			var cerr *ConfigurationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, root, cerr.Path)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nowhere")

	_, err := NewLoader().Load(context.Background(), path)

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "invalid benchmark")
}
