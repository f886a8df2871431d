// Package drawer hosts a form in a side panel with an open, dirty, submit and
// confirm-close lifecycle.
package drawer

import (
	"maps"
	"slices"

	nt "zupos/entity"
)

// State is a step of the drawer lifecycle.
type State int

const (
	Closed State = iota
	OpenClean
	OpenDirty
	Submitting
	ClosingConfirm
)

func (st State) String() string {
	switch st {
	case OpenClean:
		return "open-clean"
	case OpenDirty:
		return "open-dirty"
	case Submitting:
		return "submitting"
	case ClosingConfirm:
		return "closing-confirm"
	}
	return "closed"
}

// IsOpen reports whether the drawer is showing.
func (st State) IsOpen() bool {
	return st != Closed
}

// Mode is what the form is for.
type Mode int

const (
	Create Mode = iota
	Edit
)

func (md Mode) String() string {
	if md == Edit {
		return "edit"
	}
	return "create"
}

// Values are form values by field name.
type Values map[string]any

// Validator checks form values, returning messages by field name.
type Validator interface {
	Validate(values Values) map[string]string
}

// ValidateFunc adapts a function to Validator.
type ValidateFunc func(values Values) map[string]string

func (fn ValidateFunc) Validate(values Values) map[string]string {
	return fn(values)
}

// Session is the form state of one open cycle of the drawer.
// Transitions not offered by the current state are ignored and reported false.
type Session struct {
	validator   Validator
	warnUnsaved bool

	state    State
	prior    State
	mode     Mode
	baseline Values
	values   Values
	errors   map[string]string
	failure  error
}

// NewSession creates a closed session. A nil validator accepts anything.
func NewSession(validator Validator, warnUnsaved bool) Session {
	return Session{
		validator:   validator,
		warnUnsaved: warnUnsaved,
	}
}

// Open starts a new cycle in mode with baseline as the initial values:
// defaults for create, the loaded entity for edit.
// Any earlier cycle is discarded.
func (ssn Session) Open(mode Mode, baseline Values) Session {

	ssn.state = OpenClean
	ssn.prior = OpenClean
	ssn.mode = mode
	ssn.baseline = maps.Clone(baseline)
	ssn.values = maps.Clone(baseline)
	ssn.errors = nil
	ssn.failure = nil

	if ssn.baseline == nil {
		ssn.baseline = Values{}
		ssn.values = Values{}
	}
	return ssn
}

// Set changes one field and recomputes dirtiness.
// Field errors are recomputed once a submit has reported any.
func (ssn Session) Set(field string, value any) (Session, bool) {

	if ssn.state != OpenClean && ssn.state != OpenDirty {
		return ssn, false
	}

	ssn.values = maps.Clone(ssn.values)
	ssn.values[field] = value
	if ssn.errors != nil {
		ssn.errors = ssn.validate()
	}

	ssn.state = OpenClean
	if ssn.IsDirty() {
		ssn.state = OpenDirty
	}
	return ssn, true
}

// Submit validates and moves to submitting when there are no errors.
func (ssn Session) Submit() (Session, bool) {

	if ssn.state != OpenClean && ssn.state != OpenDirty {
		return ssn, false
	}

	ssn.errors = ssn.validate()
	if ssn.HasErrors() {
		return ssn, false
	}

	ssn.prior = ssn.state
	ssn.state = Submitting
	ssn.failure = nil
	return ssn, true
}

// SubmitSucceeded closes the drawer, discarding the session.
func (ssn Session) SubmitSucceeded() (Session, bool) {

	if ssn.state != Submitting {
		return ssn, false
	}
	return ssn.close(), true
}

// SubmitFailed returns to the open state held before submitting.
// Values are kept and err is surfaced by Failure.
func (ssn Session) SubmitFailed(err error) (Session, bool) {

	if ssn.state != Submitting {
		return ssn, false
	}

	ssn.state = ssn.prior
	ssn.failure = err
	return ssn, true
}

// RequestClose closes a clean drawer and asks for confirmation on a dirty one
// when unsaved warnings are enabled.
func (ssn Session) RequestClose() (Session, bool) {

	switch ssn.state {
	case OpenClean:
		return ssn.close(), true
	case OpenDirty:
		if !ssn.warnUnsaved {
			return ssn.close(), true
		}
		ssn.state = ClosingConfirm
		return ssn, true
	}
	return ssn, false
}

// ConfirmDiscard closes after a confirmation prompt.
func (ssn Session) ConfirmDiscard() (Session, bool) {

	if ssn.state != ClosingConfirm {
		return ssn, false
	}
	return ssn.close(), true
}

// CancelClose returns from the confirmation prompt to editing.
func (ssn Session) CancelClose() (Session, bool) {

	if ssn.state != ClosingConfirm {
		return ssn, false
	}

	ssn.state = OpenDirty
	return ssn, true
}

// Reset restores the baseline and clears errors without closing.
func (ssn Session) Reset() (Session, bool) {

	if ssn.state != OpenClean && ssn.state != OpenDirty {
		return ssn, false
	}

	ssn.values = maps.Clone(ssn.baseline)
	ssn.errors = nil
	ssn.failure = nil
	ssn.state = OpenClean
	return ssn, true
}

func (ssn Session) State() State { return ssn.state }
func (ssn Session) Mode() Mode   { return ssn.mode }

// Values returns a copy of the current values.
func (ssn Session) Values() Values { return maps.Clone(ssn.values) }

// Value returns the current value of field.
func (ssn Session) Value(field string) any { return ssn.values[field] }

// Errors returns field errors from the last edit or submit.
func (ssn Session) Errors() map[string]string { return maps.Clone(ssn.errors) }

// Error returns the message for field, empty when valid.
func (ssn Session) Error(field string) string { return ssn.errors[field] }

func (ssn Session) HasErrors() bool    { return len(ssn.errors) > 0 }
func (ssn Session) IsSubmitting() bool { return ssn.state == Submitting }

// Failure is the error of the last failed submit, if any.
func (ssn Session) Failure() error { return ssn.failure }

// IsDirty compares every field against the baseline.
func (ssn Session) IsDirty() bool {

	fields := slices.Collect(maps.Keys(ssn.baseline))
	for field := range ssn.values {
		if _, ok := ssn.baseline[field]; !ok {
			fields = append(fields, field)
		}
	}

	for _, field := range fields {
		if !(nt.Value{Raw: ssn.values[field]}).Equal(ssn.baseline[field]) {
			return true
		}
	}
	return false
}

// unexported

func (ssn Session) validate() map[string]string {

	if ssn.validator == nil {
		return nil
	}

	errs := ssn.validator.Validate(maps.Clone(ssn.values))
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (ssn Session) close() Session {
	return NewSession(ssn.validator, ssn.warnUnsaved)
}
