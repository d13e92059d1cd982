// Package plan works out which (solver, dataset) instance pairs a run would
// execute once filters have been validated, and renders that plan.
package plan

import (
	"github.com/vk/benchcheck/internal/catalog"
	"github.com/vk/benchcheck/internal/match"
	"github.com/vk/benchcheck/internal/randstate"
)

// Instance is one concrete, parameter-bound entity.
type Instance struct {
	Entity *catalog.Entity
	Name   string
}

// Pair is a solver instance scheduled against a dataset instance.
type Pair struct {
	Solver  Instance
	Dataset Instance
	// Compatible is false when the solver cannot handle the dataset and the
	// pair will be skipped.
	Compatible bool
}

// Options selects what goes into a plan.
type Options struct {
	// DatasetPatterns and SolverPatterns filter instances; nil keeps all.
	DatasetPatterns []string
	SolverPatterns  []string
	// RandomState, when set, is sampled once to fingerprint the run's seed.
	RandomState *randstate.Generator
}

// Plan is the outcome of filtering a benchmark.
type Plan struct {
	Benchmark   string
	Objective   string
	Datasets    []Instance
	Solvers     []Instance
	Pairs       []Pair
	Fingerprint uint64
	HasSeed     bool
}

// Build selects the instances matched by the option patterns and pairs every
// selected dataset with every selected solver, datasets outermost.
func Build(b *catalog.Benchmark, opts Options) *Plan {
	p := &Plan{
		Benchmark: b.Name,
		Objective: b.Objective,
		Datasets:  selectInstances(b.Datasets, opts.DatasetPatterns),
		Solvers:   selectInstances(b.Solvers, opts.SolverPatterns),
	}

	for _, d := range p.Datasets {
		for _, s := range p.Solvers {
			p.Pairs = append(p.Pairs, Pair{
				Solver:     s,
				Dataset:    d,
				Compatible: catalog.IsCompatible(s.Entity, d.Entity),
			})
		}
	}

	if opts.RandomState != nil {
		p.Fingerprint = opts.RandomState.Uint64()
		p.HasSeed = true
	}
	return p
}

// Runnable returns the pairs that will actually execute.
func (p *Plan) Runnable() []Pair {
	var out []Pair
	for _, pair := range p.Pairs {
		if pair.Compatible {
			out = append(out, pair)
		}
	}
	return out
}

// Skipped returns the pairs dropped for incompatibility.
func (p *Plan) Skipped() []Pair {
	var out []Pair
	for _, pair := range p.Pairs {
		if !pair.Compatible {
			out = append(out, pair)
		}
	}
	return out
}

func selectInstances(entities []*catalog.Entity, patterns []string) []Instance {
	var out []Instance
	for _, e := range entities {
		for _, name := range match.Select(catalog.Expand(e), patterns) {
			out = append(out, Instance{Entity: e, Name: name})
		}
	}
	return out
}
