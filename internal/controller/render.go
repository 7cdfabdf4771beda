package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	m "typelint.dev/pkg/typelint/internal/model"
)

const (
	reportTitle     = "Validation Report"
	extractionTitle = "Type Extraction"
	noFindingsLine  = "No issues or warnings found!"
	noConflictsLine = "No conflicts found."
	diffContext     = 3
)

func renderReport(report m.Report, p palette) string {
	var b strings.Builder

	b.WriteString(p.title(reportTitle) + "\n")
	b.WriteString(strings.Repeat("=", 18) + "\n")

	if len(report.Issues) > 0 {
		b.WriteString("\n" + p.issue(fmt.Sprintf("Issues Found (%d):", len(report.Issues))) + "\n")
		writeFindings(&b, report.Issues, p)
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n" + p.warning(fmt.Sprintf("Warnings (%d):", len(report.Warnings))) + "\n")
		writeFindings(&b, report.Warnings, p)
	}

	if len(report.Issues) == 0 && len(report.Warnings) == 0 {
		b.WriteString("\n" + p.success(noFindingsLine) + "\n")

		return b.String()
	}

	b.WriteString("\n" + renderSummaryTable(report))

	return b.String()
}

func writeFindings(b *strings.Builder, findings []m.Finding, p palette) {
	for i, finding := range findings {
		fmt.Fprintf(b, "   %d. [%s] %s\n", i+1, finding.Category, finding.Message)

		if finding.FilePath != "" {
			b.WriteString(p.muted(fmt.Sprintf("      File: %s", finding.FilePath)) + "\n")
		}
	}
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Issues", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	counts := report.CountByCategory()

	for _, category := range m.Categories {
		count, ok := counts[category]
		if !ok {
			continue
		}

		table.Append([]string{string(category), fmt.Sprintf("%d", count[0]), fmt.Sprintf("%d", count[1])})
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", len(report.Issues)),
		fmt.Sprintf("%d", len(report.Warnings)),
	})

	table.Render()

	return tableBuffer.String()
}

func renderExtraction(extraction m.Extraction, p palette) string {
	var b strings.Builder

	b.WriteString(p.title(extractionTitle) + "\n")
	b.WriteString(strings.Repeat("=", len(extractionTitle)) + "\n\n")

	for _, tree := range []struct {
		tree  m.Tree
		files []m.FileRecord
	}{
		{extraction.TreeA, extraction.FilesA},
		{extraction.TreeB, extraction.FilesB},
	} {
		fmt.Fprintf(&b, "%s: %d file(s), %d declaration(s) in %s\n",
			p.heading(tree.tree.Label), len(tree.files), m.DeclarationCount(tree.files), tree.tree.Root)
	}

	if len(extraction.Conflicts) == 0 {
		b.WriteString("\n" + p.success(noConflictsLine) + "\n")

		return b.String()
	}

	b.WriteString("\n" + p.issue(fmt.Sprintf("Conflicts (%d):", len(extraction.Conflicts))) + "\n")

	for i, conflict := range extraction.Conflicts {
		fmt.Fprintf(&b, "   %d. %s: %s\n", i+1, conflict.Name, conflict.Reason)
		b.WriteString(p.muted(fmt.Sprintf("      %s: %s", extraction.TreeA.Label, conflict.LocationA.Path)) + "\n")
		b.WriteString(p.muted(fmt.Sprintf("      %s: %s", extraction.TreeB.Label, conflict.LocationB.Path)) + "\n")

		diff, err := conflictDiff(conflict, extraction.TreeA.Label, extraction.TreeB.Label)
		if err != nil {
			fmt.Fprintf(&b, "      (diff unavailable: %v)\n", err)
			continue
		}

		for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
			b.WriteString("      " + paintDiffLine(line, p) + "\n")
		}
	}

	return b.String()
}

func conflictDiff(conflict m.ConflictRecord, labelA, labelB string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(conflict.RawA),
		B:        difflib.SplitLines(conflict.RawB),
		FromFile: fmt.Sprintf("%s/%s", labelA, conflict.LocationA.Path),
		ToFile:   fmt.Sprintf("%s/%s", labelB, conflict.LocationB.Path),
		Context:  diffContext,
	})
}

func paintDiffLine(line string, p palette) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return p.heading(line)
	case strings.HasPrefix(line, "+"):
		return p.added(line)
	case strings.HasPrefix(line, "-"):
		return p.removed(line)
	case strings.HasPrefix(line, "@@"):
		return p.muted(line)
	default:
		return line
	}
}

func renderRelease(release m.Release, p palette) string {
	var b strings.Builder

	if len(release.Conflicts) > 0 {
		b.WriteString(p.warning(fmt.Sprintf("Type conflicts (%d):", len(release.Conflicts))) + "\n")

		for _, conflict := range release.Conflicts {
			fmt.Fprintf(&b, "  - %s: %s\n", conflict.Name, conflict.Reason)
		}

		b.WriteString("\n")
	}

	if release.DryRun {
		b.WriteString(p.warning("Dry run:") + " ")
		fmt.Fprintf(&b, "would release %s (current %s)\n", release.Version, release.PreviousVersion)
		b.WriteString("\n" + p.heading("Changelog preview:") + "\n")
		b.WriteString(release.Changelog)

		if !strings.HasSuffix(release.Changelog, "\n") {
			b.WriteString("\n")
		}

		return b.String()
	}

	b.WriteString(p.success(fmt.Sprintf("Released %s", release.Version)))
	fmt.Fprintf(&b, " (previous %s)\n", release.PreviousVersion)

	return b.String()
}

// encode marshals v for the machine-readable formats.
func encode(format Format, v any) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}

		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}

		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
