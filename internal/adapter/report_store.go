package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

// ReportStore persists the run summary into the output tree.
type ReportStore interface {
	SaveReport(path m.Path, report m.CompareReport) error
}

type yamlReportStore struct{}

// NewReportStore constructs the YAML-backed ReportStore.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

func (s *yamlReportStore) SaveReport(path m.Path, report m.CompareReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o640)
}
