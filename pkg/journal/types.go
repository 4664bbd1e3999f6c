package journal

import "time"

// Entry is one mutating action performed through the console, recorded
// locally after the server accepted it. The server keeps the authoritative
// audit trail; this journal exists so an operator can answer "what did I
// change today" without a round trip.
type Entry struct {
	OccurredAt time.Time
	Resource   string // invoices | payments | credit-notes | data-management | sequence | participants | feedback
	RecordID   string
	Action     string // void | backdate | number | override | edit-paid | delete | edit | reset | toggle | upload
	Reason     string
	Outcome    string // ok | error text
}
