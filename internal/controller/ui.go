// Package controller provides console reporting for comparison runs.
package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

// UI defines the console output surface of a run. The shared log file gets
// the same events through slog; the UI mirrors them for the operator.
type UI interface {
	DisplayExtractionInfo(revision m.Revision, dest m.Path)
	DisplayGenerationInfo(revision m.Revision, sourceDir m.Path)
	DisplayCompareResult(result m.CompareResult)
	DisplayError(message string)
}

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayExtractionInfo announces the extraction of one revision's sources.
func (s *SimpleUI) DisplayExtractionInfo(revision m.Revision, dest m.Path) {
	s.printf("Extracting sources for %s into %s\n", revision, dest)
}

// DisplayGenerationInfo announces the description generation for one revision.
func (s *SimpleUI) DisplayGenerationInfo(revision m.Revision, sourceDir m.Path) {
	s.printf("Generating API description for %s from %s\n", revision, sourceDir)
}

// DisplayCompareResult prints the classification and a summary table.
func (s *SimpleUI) DisplayCompareResult(result m.CompareResult) {
	s.printf("Compared API descriptions for %s %s\n", result.PrevRevision, result.LatestRevision)
	s.printf("  %s\n", statusStyle(result.Status).Render(result.Status.String()))
	s.printf("\n%s", renderResultTable(result))
}

// DisplayError mirrors a failure message to the console.
func (s *SimpleUI) DisplayError(message string) {
	s.printf("Error: %s\n", message)
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

func statusStyle(status m.CompareStatus) lipgloss.Style {
	switch status {
	case m.StatusNoChanges:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	case m.StatusCompatible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	case m.StatusIncompatible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	}
}

func renderResultTable(result m.CompareResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Previous", "Latest", "Exit Code", "Classification"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		string(result.PrevRevision),
		string(result.LatestRevision),
		fmt.Sprintf("%d", result.ExitCode),
		result.Status.String(),
	})
	table.Render()

	return buf.String()
}
