package finance

import (
	"fmt"
	"strconv"
	"strings"
)

// DocNumber is the structured form of a human-readable invoice or credit
// note number such as "INV/MDDRC/2026/01/0007". Servers also return the
// year/month/sequence as separate fields; parsing the formatted string is
// the fallback for older records that predate those fields.
type DocNumber struct {
	Prefix   string // INV or CN
	Org      string
	Year     int
	Month    int
	Sequence int
}

const numberDelimiter = "/"

// OrgCode is the organisation segment of every document number the
// platform issues.
const OrgCode = "MDDRC"

// ParseDocNumber splits a formatted document number into its components.
func ParseDocNumber(formatted string) (DocNumber, error) {
	parts := strings.Split(strings.TrimSpace(formatted), numberDelimiter)
	if len(parts) != 5 {
		return DocNumber{}, fmt.Errorf("malformed document number: %q", formatted)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return DocNumber{}, fmt.Errorf("bad year in document number %q: %w", formatted, err)
	}
	month, err := strconv.Atoi(parts[3])
	if err != nil {
		return DocNumber{}, fmt.Errorf("bad month in document number %q: %w", formatted, err)
	}
	seq, err := strconv.Atoi(parts[4])
	if err != nil {
		return DocNumber{}, fmt.Errorf("bad sequence in document number %q: %w", formatted, err)
	}
	if month < 1 || month > 12 {
		return DocNumber{}, fmt.Errorf("month out of range in document number %q", formatted)
	}

	return DocNumber{
		Prefix:   parts[0],
		Org:      parts[1],
		Year:     year,
		Month:    month,
		Sequence: seq,
	}, nil
}

// Format renders the canonical human-readable form, zero-padding month to
// two digits and sequence to four.
func (n DocNumber) Format() string {
	parts := []string{
		n.Prefix,
		n.Org,
		strconv.Itoa(n.Year),
		fmt.Sprintf("%02d", n.Month),
		fmt.Sprintf("%04d", n.Sequence),
	}
	return strings.Join(parts, numberDelimiter)
}
