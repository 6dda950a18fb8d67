package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/nexidian/gocliselect"
)

func PrintTable(headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}
	// print header
	for i, header := range headers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}

	// print footer
	for i, footer := range footers {
		if footer != "" {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], footer)
		} else {
			// print empty space for skipped footer
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], "")
		}
	}
	fmt.Fprintln(os.Stdout)
}

// FormatHours renders a minute count as fractional hours, e.g. "2.5h".
func FormatHours(minutes int) string {
	return fmt.Sprintf("%.1fh", float64(minutes)/60.0)
}

// shortID returns the display prefix of a session id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// sortedKeys gives deterministic iteration order for the tag breakdown.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

func successf(format string, args ...any) {
	fmt.Println(color.GreenString("✓ ") + fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString(format, args...))
}

// pickSession opens an interactive menu over sessions and returns the
// chosen id, or an empty string when there is nothing to choose.
func pickSession(sessions []Session, prompt string) string {
	if len(sessions) == 0 {
		return ""
	}

	menu := gocliselect.NewMenu(prompt)
	for _, s := range sessions {
		label := fmt.Sprintf("%s  %s (%s)", shortID(s.ID), s.Title, s.Category)
		menu.AddItem(label, s.ID)
	}
	choice, err := menu.Display()
	if err != nil {
		return ""
	}
	id, _ := choice.(string)
	return id
}
