package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	PrintError(&buf, "Error", "failed to read policy")

	want := "  ✘ Error           failed to read policy\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("escape codes written with color disabled")
	}
}
