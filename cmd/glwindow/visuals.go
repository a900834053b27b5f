package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rpgmk/displaylayer/internal/x11"
	"github.com/rpgmk/displaylayer/pkg/window"
)

var visualColumns = []string{"", "VISUAL", "CLASS", "RGBA", "DOUBLE", "STEREO", "BUFFER", "DEPTH", "STENCIL", "LEVEL"}

func runVisuals(args []string) int {
	fs := flag.NewFlagSet("visuals", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file (default ~/.config/displaylayer/config.yaml)")
	display := fs.String("display", "", "X display to connect to (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	name := cfg.Display
	if *display != "" {
		name = *display
	}

	configs, err := listVisualConfigs(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list visuals: %v\n", err)
		return 1
	}

	req := window.RequiredVisual
	chosen, ok := x11.ChooseVisualConfig(configs, req.RGBA, req.DoubleBuffer, req.DepthSize)
	if !ok {
		chosen.VisualID = 0
	}

	rows := visualRows(configs, chosen.VisualID)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		writeVisualTable(os.Stdout, rows)
	} else {
		writeVisualTSV(os.Stdout, rows)
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "No visual matches RGBA, double buffering and a 24-bit depth buffer")
		return 1
	}
	return 0
}

type visualRow struct {
	chosen bool
	cells  []string
}

func visualRows(configs []x11.VisualConfig, chosen uint32) []visualRow {
	rows := make([]visualRow, 0, len(configs))
	for _, vc := range configs {
		mark := ""
		if vc.VisualID == chosen && chosen != 0 {
			mark = "*"
		}
		rows = append(rows, visualRow{
			chosen: mark != "",
			cells: []string{
				mark,
				fmt.Sprintf("0x%x", vc.VisualID),
				visualClassName(vc.Class),
				yesNo(vc.RGBA),
				yesNo(vc.DoubleBuffer),
				yesNo(vc.Stereo),
				fmt.Sprint(vc.BufferSize),
				fmt.Sprint(vc.DepthSize),
				fmt.Sprint(vc.StencilSize),
				fmt.Sprint(vc.Level),
			},
		})
	}
	return rows
}

func writeVisualTSV(w io.Writer, rows []visualRow) {
	fmt.Fprintln(w, strings.Join(visualColumns[1:], "\t")+"\tCHOSEN")
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r.cells[1:], "\t")+"\t"+yesNo(r.chosen))
	}
}

func writeVisualTable(w io.Writer, rows []visualRow) {
	widths := make([]int, len(visualColumns))
	for i, c := range visualColumns {
		widths[i] = len(c)
	}
	for _, r := range rows {
		for i, c := range r.cells {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	chosenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(c)
		}
		return strings.Join(parts, "")
	}

	fmt.Fprintln(w, line(visualColumns, headerStyle))
	for _, r := range rows {
		style := dimStyle
		if r.chosen {
			style = chosenStyle
		}
		fmt.Fprintln(w, line(r.cells, style))
	}
}

func visualClassName(class uint32) string {
	switch class {
	case 0:
		return "StaticGray"
	case 1:
		return "GrayScale"
	case 2:
		return "StaticColor"
	case 3:
		return "PseudoColor"
	case 4:
		return "TrueColor"
	case 5:
		return "DirectColor"
	default:
		return fmt.Sprintf("class(%d)", class)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
