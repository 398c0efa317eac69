package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/ewen/folio/internal/folder"
)

// timeRounding keeps report durations readable.
const timeRounding = time.Millisecond

// reportScheme defines consistent colors for cycle report fields.
// Green: loaded counts. Red: failure counts. Cyan: labels.
type reportScheme struct {
	ok    *color.Color
	fail  *color.Color
	label *color.Color
}

func newReportScheme() *reportScheme {
	return &reportScheme{
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		label: color.New(color.FgCyan),
	}
}

// WriteReport prints a human-readable summary of one completed load cycle.
// Colors are applied only when w is a terminal.
func WriteReport(w io.Writer, rep folder.Report) {
	useColor := isTerminal(w)
	scheme := newReportScheme()

	field := func(label string, value interface{}, col *color.Color) string {
		if !useColor {
			return fmt.Sprintf("%s: %v", label, value)
		}
		return fmt.Sprintf("%s: %v", scheme.label.Sprint(label), col.Sprint(value))
	}

	plain := color.New()
	fmt.Fprintf(w, "folder %s (suffix %s)\n", rep.Folder, rep.Suffix)
	fmt.Fprintf(w, "  %s  %s  %s  %s\n",
		field("expected", rep.Expected, plain),
		field("loaded", rep.Loaded, scheme.ok),
		field("failed", rep.Failed, scheme.fail),
		field("duration", rep.Duration.Round(timeRounding), plain),
	)
	for _, path := range rep.FailedPaths {
		fmt.Fprintf(w, "  failed: %s\n", path)
	}
}
