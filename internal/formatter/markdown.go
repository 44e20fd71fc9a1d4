package formatter

import (
	"fmt"
	"strings"

	"github.com/vsa-tools/holo/internal/demo"
)

// markdownFormatter renders a report as a markdown document.
type markdownFormatter struct {
	showTables bool
}

// NewMarkdown creates a new markdown formatter.
func NewMarkdown(options Options) Formatter {
	return &markdownFormatter{showTables: options.ShowTables}
}

func (f *markdownFormatter) Format(report *demo.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# HRR Demonstration\n\n")
	fmt.Fprintf(&b, "- **Dimensionality**: %d\n", report.Dimensionality)
	fmt.Fprintf(&b, "- **Seed**: %d\n", report.Seed)
	fmt.Fprintf(&b, "- **Symbols**: %s\n", strings.Join(report.Labels, ", "))
	fmt.Fprintf(&b, "- **Recovered**: %d/%d pairs\n\n", report.RecoveredCount(), len(report.Pairs))

	b.WriteString("## Bindings\n\n")
	for _, pair := range report.Pairs {
		fmt.Fprintf(&b, "### `%s`\n\n", pair.BoundLabel)
		fmt.Fprintf(&b, "Magnitude %.3f\n\n", pair.BoundMagnitude)
		f.writeRecovery(&b, &pair.Recovery)
	}

	if report.Trace != nil {
		b.WriteString("## Superposed Trace\n\n")
		fmt.Fprintf(&b, "`%s`\n\n", report.Trace.Label)
		for i := range report.Trace.Recoveries {
			f.writeRecovery(&b, &report.Trace.Recoveries[i])
		}
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeRecovery(b *strings.Builder, recovery *demo.Recovery) {
	fmt.Fprintf(b, "`%s` cleans up to **%s** (%.3f, expected %s)\n\n",
		recovery.Query, recovery.Best.Label, recovery.Best.Similarity, recovery.Expected)

	if !f.showTables {
		return
	}
	b.WriteString("| Symbol | Similarity |\n|---|---|\n")
	for _, match := range recovery.Matches {
		marker := ""
		if match.Tied {
			marker = " (tied)"
		}
		fmt.Fprintf(b, "| %s | %.3f%s |\n", match.Label, match.Similarity, marker)
	}
	b.WriteString("\n")
}
