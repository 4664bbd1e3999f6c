// Package dialog models the confirm-with-reason flow that guards every
// destructive or financially sensitive action. A dialog is either Closed or
// Open on a target record; submitting runs exactly one mutating call.
// Success closes and resets the dialog and fires the owning list's reload
// hook. Failure keeps it open with the server's detail message so the
// operator can adjust and retry.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

var ErrReasonRequired = errors.New("a reason is required for this action")

type State int

const (
	Closed State = iota
	Open
)

type Dialog struct {
	state         State
	targetID      string
	fields        map[string]string
	reason        string
	requireReason bool
	lastError     string
	onReload      func()
}

// New returns a closed dialog. requireReason gates Submit on a non-empty
// reason; onReload fires after every successful submit and may be nil.
func New(requireReason bool, onReload func()) *Dialog {
	return &Dialog{requireReason: requireReason, onReload: onReload}
}

func (d *Dialog) State() State     { return d.state }
func (d *Dialog) TargetID() string { return d.targetID }
func (d *Dialog) LastError() string { return d.lastError }

func (d *Dialog) Field(name string) string { return d.fields[name] }

// OpenFor transitions Closed -> Open, pre-populating the form from the
// target row's current values.
func (d *Dialog) OpenFor(targetID string, fields map[string]string) {
	d.state = Open
	d.targetID = targetID
	d.fields = map[string]string{}
	for k, v := range fields {
		d.fields[k] = v
	}
	d.reason = ""
	d.lastError = ""
}

func (d *Dialog) SetField(name, value string) {
	if d.state != Open {
		return
	}
	d.fields[name] = value
}

func (d *Dialog) SetReason(reason string) {
	if d.state != Open {
		return
	}
	d.reason = reason
}

func (d *Dialog) Reason() string { return d.reason }

// CanSubmit reports whether the confirm action is enabled: the dialog must
// be open and, when a reason is required, the reason must be non-empty.
func (d *Dialog) CanSubmit() bool {
	if d.state != Open {
		return false
	}
	if d.requireReason && strings.TrimSpace(d.reason) == "" {
		return false
	}
	return true
}

// Cancel transitions Open -> Closed and resets the form.
func (d *Dialog) Cancel() {
	d.reset()
}

// Submit runs the mutating call. On success the dialog closes, the form
// resets, and the reload hook fires. On failure the dialog stays open and
// LastError carries the server detail verbatim when the server provided
// one.
func (d *Dialog) Submit(ctx context.Context, do func(ctx context.Context) error) error {
	if d.state != Open {
		return fmt.Errorf("dialog is not open")
	}
	if !d.CanSubmit() {
		return ErrReasonRequired
	}

	if err := do(ctx); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			d.lastError = apiErr.Detail
		} else {
			d.lastError = err.Error()
		}
		return err
	}

	d.reset()
	if d.onReload != nil {
		d.onReload()
	}
	return nil
}

func (d *Dialog) reset() {
	d.state = Closed
	d.targetID = ""
	d.fields = nil
	d.reason = ""
	d.lastError = ""
}
