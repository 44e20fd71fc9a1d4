package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/vsa-tools/holo/internal/demo"
)

// terminalFormatter renders a report as plain text for terminal display using
// go-termfmt tree views and confidence bars.
type terminalFormatter struct {
	opts       *termfmt.TerminalOptions
	showTables bool
}

// NewTerminal creates a new terminal formatter.
func NewTerminal(options Options) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = options.Color
	opts.Emoji = options.Emoji
	return &terminalFormatter{opts: opts, showTables: options.ShowTables}
}

func (f *terminalFormatter) Format(report *demo.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeParameters(&b, report)
	f.writePairs(&b, report)
	if report.Trace != nil {
		f.writeTrace(&b, report.Trace)
	}

	return []byte(b.String()), nil
}

// writeHeader writes a box-drawn header matching the tool's text output style.
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Holographic Reduced Representation Demo"
	b.WriteString("╔" + strings.Repeat("═", len(header)+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", len(header)+2) + "╝\n\n")
}

// writeParameters writes the run parameters as a tree view.
func (f *terminalFormatter) writeParameters(b *strings.Builder, report *demo.Report) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Parameters\n")

	items := []termfmt.TreeItem{
		{Label: "Dimensionality", Value: fmt.Sprintf("%d", report.Dimensionality)},
		{Label: "Seed", Value: fmt.Sprintf("%d", report.Seed)},
		{Label: "Symbols", Value: strings.Join(report.Labels, ", ")},
		{Label: "Recovered", Value: fmt.Sprintf("%d/%d pairs", report.RecoveredCount(), len(report.Pairs)), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writePairs writes one section per bound pair with its recovery result.
func (f *terminalFormatter) writePairs(b *strings.Builder, report *demo.Report) {
	symbol := termfmt.GetEmoji("insights", f.opts)
	b.WriteString(symbol + " Bindings\n")

	items := make([]termfmt.TreeItem, 0, len(report.Pairs))
	for i, pair := range report.Pairs {
		item := termfmt.TreeItem{
			Label:    pair.BoundLabel,
			Value:    fmt.Sprintf("|c| = %.3f", pair.BoundMagnitude),
			Children: f.recoveryItems(&pair.Recovery),
			Last:     i == len(report.Pairs)-1,
		}
		items = append(items, item)
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeTrace writes the superposed-trace section.
func (f *terminalFormatter) writeTrace(b *strings.Builder, trace *demo.TraceResult) {
	symbol := termfmt.GetEmoji("pattern", f.opts)
	b.WriteString(symbol + " Superposed Trace\n")
	b.WriteString(trace.Label + "\n")

	items := make([]termfmt.TreeItem, 0, len(trace.Recoveries))
	for i, recovery := range trace.Recoveries {
		rec := recovery
		item := termfmt.TreeItem{
			Label:    recovery.Query,
			Value:    verdict(&rec),
			Children: f.recoveryItems(&rec),
			Last:     i == len(trace.Recoveries)-1,
		}
		items = append(items, item)
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// recoveryItems renders one cleanup result: the verdict line plus, when
// enabled, the full ranked similarity table with confidence bars.
func (f *terminalFormatter) recoveryItems(recovery *demo.Recovery) []termfmt.TreeItem {
	items := []termfmt.TreeItem{
		{Label: "Cleanest", Value: fmt.Sprintf("%s (%.3f) %s", recovery.Best.Label, recovery.Best.Similarity, verdict(recovery))},
	}

	if f.showTables {
		children := make([]termfmt.TreeItem, 0, len(recovery.Matches))
		for _, match := range recovery.Matches {
			bar := termfmt.CreateConfidenceBar(clamp01(match.Similarity), f.opts)
			children = append(children, termfmt.TreeItem{
				Label: match.Label,
				Value: fmt.Sprintf("%s %.3f", bar, match.Similarity),
			})
		}
		items = append(items, termfmt.TreeItem{Label: "Similarities", Children: children, Last: true})
	} else {
		items[0].Last = true
	}
	return items
}

func verdict(recovery *demo.Recovery) string {
	switch {
	case recovery.Best.Tied:
		return "tied"
	case recovery.Recovered:
		return "recovered " + recovery.Expected
	default:
		return "expected " + recovery.Expected
	}
}

// clamp01 bounds a similarity into [0,1] for bar rendering; cosine scores can
// be slightly negative for unrelated vectors.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
