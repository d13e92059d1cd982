package catalog

// IsCompatible reports whether solver may run against dataset. The only
// incompatible pairing is a sparse dataset with a solver that does not
// support sparse data. A nil entity carries the default flags.
func IsCompatible(solver, dataset *Entity) bool {
	sparse := dataset != nil && dataset.Sparse
	supportsSparse := solver == nil || solver.SupportsSparse
	return !sparse || supportsSparse
}
