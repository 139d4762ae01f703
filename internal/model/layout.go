package model

import "path/filepath"

const (
	srcFolder       = "src"
	diffFolder      = "diff"
	descriptionName = "output"
	logFileName     = "messages.log"
	reportFileName  = "report.yaml"
)

// Layout describes the artifact tree produced under one output root:
//
//	src/<revision>/...   extracted sources per revision
//	<revision>/output    generated API description per revision
//	diff/                comparison artifacts
//	messages.log         shared log for every stage
//	report.yaml          machine-readable run summary
type Layout struct {
	root Path
}

// NewLayout returns the Layout rooted at the given output path.
func NewLayout(root Path) Layout {
	return Layout{root: root}
}

// Root returns the output root directory.
func (l Layout) Root() Path {
	return l.root
}

// SourceCopyDir returns the directory the revision's sources are extracted to.
func (l Layout) SourceCopyDir(rev Revision) Path {
	return Path(filepath.Join(string(l.root), srcFolder, string(rev)))
}

// DescriptionPath returns the API-name path the generator writes the
// revision's description under. The comparator later addresses the same
// description as <revision>/output relative to Root.
func (l Layout) DescriptionPath(rev Revision) Path {
	return Path(filepath.Join(string(l.root), string(rev), descriptionName))
}

// DescriptionName returns the file-name stem descriptions are stored under.
func (l Layout) DescriptionName() string {
	return descriptionName
}

// DiffDir returns the directory comparison artifacts are written to.
func (l Layout) DiffDir() Path {
	return Path(filepath.Join(string(l.root), diffFolder))
}

// LogPath returns the shared log file used by every stage of the run.
func (l Layout) LogPath() Path {
	return Path(filepath.Join(string(l.root), logFileName))
}

// ReportPath returns the location of the persisted run summary.
func (l Layout) ReportPath() Path {
	return Path(filepath.Join(string(l.root), reportFileName))
}
