// Package model holds the value types shared across the apidiff layers.
package model

// Path represents a file system path.
type Path string

// Revision identifies a commit, branch, or tag in the repository under
// comparison. It is treated as an opaque string and resolved once per run.
type Revision string

// CompareStatus classifies the outcome of a description comparison from the
// external tool's exit code.
type CompareStatus int

// Exit codes of the jdiff comparator.
const (
	// StatusError indicates the comparator failed, most commonly because a
	// description covers an empty module.
	StatusError CompareStatus = 1
	// StatusNoChanges indicates the two API descriptions are identical.
	StatusNoChanges CompareStatus = 100
	// StatusCompatible indicates backwards compatible API changes.
	StatusCompatible CompareStatus = 101
	// StatusIncompatible indicates backwards incompatible API changes.
	StatusIncompatible CompareStatus = 102
)

// ClassifyExitCode maps a raw comparator exit code to a CompareStatus. Any
// code outside the documented set is the error state.
func ClassifyExitCode(code int) CompareStatus {
	switch CompareStatus(code) {
	case StatusNoChanges, StatusCompatible, StatusIncompatible:
		return CompareStatus(code)
	default:
		return StatusError
	}
}

func (s CompareStatus) String() string {
	switch s {
	case StatusNoChanges:
		return "No API changes"
	case StatusCompatible:
		return "API changes are backwards compatible"
	case StatusIncompatible:
		return "API changes are not backwards compatible"
	default:
		return "Error in API description, most likely an empty module"
	}
}

// CompareResult is the outcome of one comparison run. It is owned by the
// workflow for the duration of the run and discarded after reporting.
type CompareResult struct {
	PrevRevision   Revision
	LatestRevision Revision
	ExitCode       int
	Status         CompareStatus
}

// CompareReport is the persisted form of a CompareResult, written as YAML
// into the output tree.
type CompareReport struct {
	PreviousRevision string   `yaml:"previous_revision"`
	LatestRevision   string   `yaml:"latest_revision"`
	Packages         []string `yaml:"packages"`
	ExitCode         int      `yaml:"exit_code"`
	Classification   string   `yaml:"classification"`
	DiffDir          string   `yaml:"diff_dir"`
	LogPath          string   `yaml:"log_path"`
}
