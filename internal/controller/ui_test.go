package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayExtractionInfo(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayExtractionInfo("release-4.10.2", "out/src/release-4.10.2")

	assert.Contains(t, buf.String(), "release-4.10.2")
	assert.Contains(t, buf.String(), "out/src/release-4.10.2")
}

func TestSimpleUI_DisplayCompareResult(t *testing.T) {
	tests := []struct {
		name   string
		status m.CompareStatus
		want   string
	}{
		{"no changes", m.StatusNoChanges, "No API changes"},
		{"compatible", m.StatusCompatible, "backwards compatible"},
		{"incompatible", m.StatusIncompatible, "not backwards compatible"},
		{"error", m.StatusError, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI()

			ui.DisplayCompareResult(m.CompareResult{
				PrevRevision:   "rev-a",
				LatestRevision: "rev-b",
				ExitCode:       int(tt.status),
				Status:         tt.status,
			})

			out := buf.String()
			assert.Contains(t, out, "rev-a")
			assert.Contains(t, out, "rev-b")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSimpleUI_DisplayError(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayError("revision not found")

	assert.Contains(t, buf.String(), "Error: revision not found")
}
