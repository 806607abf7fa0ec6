// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nitzanshifris/cv2web/internal/selection"
	"github.com/nitzanshifris/cv2web/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelections outputs the chosen component per section, in render order.
func (p *Printer) PrintSelections(selections []types.ComponentSelection) {
	if len(selections) == 0 {
		return
	}

	var sb strings.Builder
	for _, sel := range selections {
		sb.WriteString(fmt.Sprintf("%-15s → %s\n", sel.Section, sel.ComponentType))
	}
	p.printBox("COMPONENT SELECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the analysis side channel: archetype, selection path
// and the per-section scores when the smart path ran.
func (p *Printer) PrintReport(report *selection.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Archetype: %s\n", report.Archetype))
	path := "basic"
	if report.SmartPath {
		path = "smart"
	}
	sb.WriteString(fmt.Sprintf("Path:      %s\n", path))

	if len(report.Sections) > 0 {
		sb.WriteString("\nSection analysis:\n")
		names := make([]string, 0, len(report.Sections))
		for name := range report.Sections {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			a := report.Sections[name]
			sb.WriteString(fmt.Sprintf("  %-15s richness=%.2f items=%d %s\n",
				name, a.Richness, a.ItemCount, a.LayoutVariant))
			if a.MergeInto != "" {
				sb.WriteString(fmt.Sprintf("  %-15s suggest merge into %s\n", "", a.MergeInto))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\nLayout: %s, %s spacing\n",
		report.Layout.LayoutType, report.Layout.Spacing))
	for _, m := range sortedMergePairs(report.Layout.Merges) {
		sb.WriteString(fmt.Sprintf("  merge %s → %s\n", m[0], m[1]))
	}

	p.printBox("CV ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func sortedMergePairs(merges map[string]string) [][2]string {
	pairs := make([][2]string, 0, len(merges))
	for from, into := range merges {
		pairs = append(pairs, [2]string{from, into})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}
