package finance

import "testing"

func TestParseDocNumber(t *testing.T) {
	n, err := ParseDocNumber("INV/MDDRC/2026/01/0007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Prefix != "INV" || n.Org != "MDDRC" {
		t.Fatalf("bad prefix/org: %+v", n)
	}
	if n.Year != 2026 || n.Month != 1 || n.Sequence != 7 {
		t.Fatalf("expected 2026/1/7, got %d/%d/%d", n.Year, n.Month, n.Sequence)
	}
}

func TestParseDocNumber_CreditNote(t *testing.T) {
	n, err := ParseDocNumber("CN/MDDRC/2025/12/0103")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Prefix != "CN" || n.Year != 2025 || n.Month != 12 || n.Sequence != 103 {
		t.Fatalf("bad parse: %+v", n)
	}
}

func TestParseDocNumber_Malformed(t *testing.T) {
	for _, s := range []string{"", "INV/MDDRC/2026/01", "INV/MDDRC/abcd/01/0007", "INV/MDDRC/2026/13/0007"} {
		if _, err := ParseDocNumber(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestDocNumberFormat_RoundTrip(t *testing.T) {
	orig := "INV/MDDRC/2026/01/0007"
	n, err := ParseDocNumber(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := n.Format(); got != orig {
		t.Fatalf("expected %q, got %q", orig, got)
	}
}
