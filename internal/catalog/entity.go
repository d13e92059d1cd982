package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName          = errors.New("entity name cannot be empty")
	ErrDuplicateParameter = errors.New("parameter declared more than once")
	ErrGroupArity         = errors.New("grouped parameter value has the wrong number of elements")
	ErrUnknownValue       = errors.New("parameter value must be fully known")
	ErrDuplicateValue     = errors.New("parameter value repeated")
)

// Kind distinguishes the two families of entities a benchmark declares.
type Kind string

const (
	KindDataset Kind = "dataset"
	KindSolver  Kind = "solver"
)

// Plural returns the kind in plural form, e.g. "datasets".
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Entity is one declared dataset or solver type.
type Entity struct {
	Name       string
	Kind       Kind
	Parameters Grid

	// Sparse reports that a dataset produces sparse data. Always false for solvers.
	Sparse bool
	// SupportsSparse reports that a solver accepts sparse data. Always true for datasets.
	SupportsSparse bool
}

// NewDataset builds a dataset entity. A nil isSparse means the dataset is dense.
func NewDataset(name string, params Grid, isSparse *bool) (*Entity, error) {
	e := &Entity{
		Name:           name,
		Kind:           KindDataset,
		Parameters:     params,
		Sparse:         boolOr(isSparse, false),
		SupportsSparse: true,
	}
	if err := e.check(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewSolver builds a solver entity. A nil supportSparse means the solver
// handles sparse data.
func NewSolver(name string, params Grid, supportSparse *bool) (*Entity, error) {
	e := &Entity{
		Name:           name,
		Kind:           KindSolver,
		Parameters:     params,
		Sparse:         false,
		SupportsSparse: boolOr(supportSparse, true),
	}
	if err := e.check(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entity) check() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%s: %w", e.Kind, ErrEmptyName)
	}
	if err := e.Parameters.check(); err != nil {
		return fmt.Errorf("%s '%s': %w", e.Kind, e.Name, err)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Benchmark is the catalog a loader hands to the validation core.
type Benchmark struct {
	Name      string
	Objective string
	Datasets  []*Entity
	Solvers   []*Entity
}

// Entities returns the benchmark's entities of the given kind, in declaration order.
func (b *Benchmark) Entities(kind Kind) []*Entity {
	if b == nil {
		return nil
	}
	switch kind {
	case KindDataset:
		return b.Datasets
	case KindSolver:
		return b.Solvers
	default:
		return nil
	}
}
