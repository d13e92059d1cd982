/*
Package catalog holds the format-agnostic description of a benchmark: its
objective and the parametrized dataset and solver entities it declares.

An Entity is a base name plus an ordered parameter Grid. Expanding an entity
takes the Cartesian product of its parameter values, in declaration order with
the last parameter varying fastest, and renders each combination into a
concrete instance name:

	simulated[n_samples=100,rho=0]
	simulated[n_samples=100,rho=0.5]
	simulated[n_samples=1000,rho=0]
	...

An entity without parameters expands to its base name alone. Rendering is
deterministic, so the same combination always yields the same name; pattern
validation and run planning both rely on that.

Entities are built once by a loader (see package manifest) and are read-only
afterwards. Nothing in this package logs or touches the filesystem.
*/
package catalog
