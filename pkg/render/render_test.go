package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatLine(t *testing.T) {
	line := Line{'n': "INV/MDDRC/2026/01/0007", 's': "issued", 'a': "1500.00"}

	got, err := FormatLine(line, "nsa", " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "INV/MDDRC/2026/01/0007 issued 1500.00" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestFormatLine_InvalidFlag(t *testing.T) {
	if _, err := FormatLine(Line{'n': "x"}, "nz", " "); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestFormatLine_CustomDelimiter(t *testing.T) {
	got, err := FormatLine(Line{'a': "1", 'b': "2"}, "ab", ",")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1,2" {
		t.Fatalf("expected comma-delimited output, got %q", got)
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"ID", "STATUS"}, nil)
	if !strings.Contains(buf.String(), "no records found") {
		t.Fatalf("empty table should say no records found, got %q", buf.String())
	}
}

func TestTable_Rows(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"ID", "STATUS"}, [][]string{{"inv-1", "paid"}, {"inv-2", "void"}})
	out := buf.String()
	if !strings.Contains(out, "inv-1") || !strings.Contains(out, "void") {
		t.Fatalf("missing rows in output: %q", out)
	}
}
