package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/benchcheck/internal/catalog"
	"github.com/vk/benchcheck/internal/ctxlog"
	"github.com/vk/benchcheck/internal/fsutil"
)

var (
	ErrNoManifest         = errors.New("no .hcl manifest found")
	ErrMissingObjective   = errors.New("no objective declared")
	ErrMultipleObjectives = errors.New("more than one objective declared")
	ErrDuplicateEntity    = errors.New("declared more than once")
	ErrInvalidValues      = errors.New("parameter values must be a list")
)

// ConfigurationError reports benchmark metadata that cannot be interpreted.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid benchmark '%s': %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// fileRoot is the set of top-level constructs a manifest file may contain.
type fileRoot struct {
	Name       *string           `hcl:"name,optional"`
	Objectives []*objectiveBlock `hcl:"objective,block"`
	Datasets   []*datasetBlock   `hcl:"dataset,block"`
	Solvers    []*solverBlock    `hcl:"solver,block"`
}

type objectiveBlock struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type datasetBlock struct {
	Name       string            `hcl:"name,label"`
	IsSparse   *bool             `hcl:"is_sparse,optional"`
	Parameters []*parameterBlock `hcl:"parameter,block"`
}

type solverBlock struct {
	Name          string            `hcl:"name,label"`
	SupportSparse *bool             `hcl:"support_sparse,optional"`
	Parameters    []*parameterBlock `hcl:"parameter,block"`
}

type parameterBlock struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values"`
}

// Loader reads benchmark manifests written in HCL.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest at path, a file or a directory, and returns the
// benchmark it declares. Files are merged in lexical order.
func (l *Loader) Load(ctx context.Context, path string) (*catalog.Benchmark, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	if len(files) == 0 {
		return nil, &ConfigurationError{Path: path, Err: ErrNoManifest}
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	b := &catalog.Benchmark{Name: defaultName(path)}
	parser := hclparse.NewParser()
	datasetNames := make(map[string]string)
	solverNames := make(map[string]string)
	objectiveFile := ""

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("failed to parse HCL file %s: %w", file, diags)}
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("failed to decode HCL file %s: %w", file, diags)}
		}

		if root.Name != nil && *root.Name != "" {
			b.Name = *root.Name
		}

		for _, obj := range root.Objectives {
			if objectiveFile != "" {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("objective '%s' in %s: %w (first in %s)", obj.Name, file, ErrMultipleObjectives, objectiveFile)}
			}
			objectiveFile = file
			b.Objective = obj.Name
		}

		for _, blk := range root.Datasets {
			if prev, dup := datasetNames[blk.Name]; dup {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("dataset '%s' in %s %w (first in %s)", blk.Name, file, ErrDuplicateEntity, prev)}
			}
			grid, err := translateParameters(blk.Parameters)
			if err != nil {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("dataset '%s' in %s: %w", blk.Name, file, err)}
			}
			e, err := catalog.NewDataset(blk.Name, grid, blk.IsSparse)
			if err != nil {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("in %s: %w", file, err)}
			}
			datasetNames[blk.Name] = file
			b.Datasets = append(b.Datasets, e)
		}

		for _, blk := range root.Solvers {
			if prev, dup := solverNames[blk.Name]; dup {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("solver '%s' in %s %w (first in %s)", blk.Name, file, ErrDuplicateEntity, prev)}
			}
			grid, err := translateParameters(blk.Parameters)
			if err != nil {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("solver '%s' in %s: %w", blk.Name, file, err)}
			}
			e, err := catalog.NewSolver(blk.Name, grid, blk.SupportSparse)
			if err != nil {
				return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("in %s: %w", file, err)}
			}
			solverNames[blk.Name] = file
			b.Solvers = append(b.Solvers, e)
		}

		logger.Debug("Loaded manifest file.", "file", file, "datasets", len(root.Datasets), "solvers", len(root.Solvers))
	}

	if objectiveFile == "" {
		return nil, &ConfigurationError{Path: path, Err: ErrMissingObjective}
	}

	logger.Info("Benchmark loaded.", "benchmark", b.Name, "objective", b.Objective, "datasets", len(b.Datasets), "solvers", len(b.Solvers))
	return b, nil
}

// translateParameters evaluates parameter blocks into a grid, keeping
// declaration order.
func translateParameters(blocks []*parameterBlock) (catalog.Grid, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	grid := make(catalog.Grid, 0, len(blocks))
	for _, blk := range blocks {
		val, diags := blk.Values.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid values for parameter '%s': %w", blk.Name, diags)
		}

		values, err := valueSlice(val)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': %w", blk.Name, err)
		}
		grid = append(grid, catalog.Parameter{Name: blk.Name, Values: values})
	}
	return grid, nil
}

func valueSlice(val cty.Value) ([]cty.Value, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("got null: %w", ErrInvalidValues)
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("got %s: %w", ty.FriendlyName(), ErrInvalidValues)
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("got unknown value: %w", ErrInvalidValues)
	}

	var out []cty.Value
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		out = append(out, v)
	}
	return out, nil
}

// defaultName derives a benchmark name from its location: the directory name
// for a directory, or the parent directory for a single file.
func defaultName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return strings.TrimSpace(filepath.Base(abs))
}
