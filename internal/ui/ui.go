package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed)

// PrintError writes a red failure line to w.
func PrintError(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s %-15s %s\n", red.Sprint("✘"), label, red.Sprint(detail))
}
