// Package render turns resource lists into terminal output: either
// delimiter-joined lines driven by composable output flags, or aligned
// tables for wide resources.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Line maps an output flag character to the value it prints. Which flags a
// resource supports is up to its command; unknown flags in the requested
// output string are an error.
type Line map[rune]string

func FormatLine(line Line, outputFlags, delimiter string) (string, error) {
	var out string
	for _, f := range outputFlags {
		v, ok := line[f]
		if !ok {
			return "", fmt.Errorf("invalid output flag: %c", f)
		}
		out += v + delimiter
	}
	return strings.TrimSuffix(out, delimiter), nil
}

// PrintLines writes one formatted line per row, skipping rows that format
// to nothing.
func PrintLines(w io.Writer, lines []Line, outputFlags, delimiter string) error {
	for _, line := range lines {
		s, err := FormatLine(line, outputFlags, delimiter)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			fmt.Fprintln(w, s)
		}
	}
	return nil
}

// Table renders an aligned header + rows block. An empty row set prints
// "no records found" instead of a bare header.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no records found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
