// Package console formats the progress and summary lines printed by
// configure-docs.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// Printer writes progress and summary lines to w.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer. When color is false no escape codes are written.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + colorReset
}

// Red, Green and Gray wrap text in the matching color when enabled.
func (p *Printer) Red(text string) string   { return p.paint(colorRed, text) }
func (p *Printer) Green(text string) string { return p.paint(colorGreen, text) }
func (p *Printer) Gray(text string) string  { return p.paint(colorGray, text) }

// Processing prints the per-file progress line.
func (p *Printer) Processing(outputPath string) {
	fmt.Fprintf(p.w, ">>> Processing %s\n", outputPath)
}

// Copying prints the progress line for a verbatim copy.
func (p *Printer) Copying(outputPath string) {
	fmt.Fprintf(p.w, ">>> Copying %s\n", outputPath)
}

// Summary prints a blank line followed by the highlighted totals line.
func (p *Printer) Summary(files int, elapsed time.Duration) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.Red(SummaryLine(files, elapsed)))
}

// SummaryLine is the uncolored totals line.
func SummaryLine(files int, elapsed time.Duration) string {
	return fmt.Sprintf(">>> Processed %d files in [%s] seconds", files, formatSeconds(elapsed))
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// SummaryJSON is the machine-readable summary printed with --json.
type SummaryJSON struct {
	Files          int      `json:"files"`
	ElapsedSeconds float64  `json:"elapsedSeconds"`
	Source         string   `json:"source"`
	Rendered       []string `json:"rendered"`
	Copied         []string `json:"copied"`
}

// JSON writes v as indented JSON followed by a newline.
func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
