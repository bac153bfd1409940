// Package form holds the state of the appointment creation form. Every
// transition returns a new State; a State is never modified in place.
package form

import (
	"time"

	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
)

type State struct {
	Draft   appointment.Draft
	Touched map[appointment.Field]bool
	Errors  validators.Errors
}

// New returns an empty form.
func New() State {
	return State{}
}

func (s State) IsTouched(f appointment.Field) bool {
	return s.Touched[f]
}

func (s State) touch(fields ...appointment.Field) State {
	touched := make(map[appointment.Field]bool, len(s.Touched)+len(fields))
	for k, v := range s.Touched {
		touched[k] = v
	}
	for _, f := range fields {
		touched[f] = true
	}
	s.Touched = touched
	return s
}

// Change sets a field value. The field error is cleared once the field
// has been touched, so the user sees it go away while correcting it.
func (s State) Change(f appointment.Field, value string) State {
	s.Draft = s.Draft.With(f, value)
	if s.IsTouched(f) {
		s.Errors = s.Errors.Without(f)
	}
	return s
}

// Blur marks a field as visited.
func (s State) Blur(f appointment.Field) State {
	return s.touch(f)
}

// Submit touches and validates every field. ok is false when the draft must
// not be sent.
func (s State) Submit(now time.Time) (next State, ok bool) {
	next = s.touch(appointment.Fields...)
	next.Errors = validators.ValidateDraftAt(next.Draft, now)
	return next, !next.Errors.HasErrors()
}

// Reset clears the form after a successful submission.
func (s State) Reset() State {
	return New()
}

// Visible returns the error to display for f, if any.
func (s State) Visible(f appointment.Field) string {
	if !s.IsTouched(f) {
		return ""
	}
	return s.Errors.Get(f)
}

// Apply runs an event coming from the page.
func (s State) Apply(ev Event) State {
	switch ev.Type {
	case EventChange:
		return s.Change(ev.Field, ev.Value)
	case EventBlur:
		return s.Blur(ev.Field)
	}
	return s
}

type EventType string

const (
	EventChange EventType = "change"
	EventBlur   EventType = "blur"
)

type Event struct {
	Type  EventType
	Field appointment.Field
	Value string
}
