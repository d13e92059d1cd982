/*
Package manifest loads a benchmark's declarations from HCL files into a
catalog.Benchmark.

A benchmark is a single .hcl file or a directory of them. Together the files
must declare exactly one objective and any number of datasets and solvers:

	name = "lasso"

	objective "Lasso Regression" {}

	dataset "simulated" {
	  is_sparse = false

	  parameter "n_samples, n_features" {
	    values = [[100, 10], [1000, 50]]
	  }
	  parameter "rho" {
	    values = [0, 0.5]
	  }
	}

	solver "cd" {
	  support_sparse = false

	  parameter "tol" {
	    values = [1e-4]
	  }
	}

Parameter blocks keep their declaration order, which is the order of the
expanded grid. A label with commas groups several parameters, and each of its
values must then be a tuple with one element per name.

Anything the loader cannot interpret is reported as a *ConfigurationError.
*/
package manifest
