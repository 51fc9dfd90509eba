package budget

import (
	"fmt"
	"time"

	"github.com/nurpe/freelance-pricing/internal/model"
)

type State string

const (
	StateIdle      State = "idle"
	StateGenerated State = "generated"
	StateEditing   State = "editing"
)

// Session tracks one budget from generation through editing. It is not safe
// for concurrent use.
type Session struct {
	state  State
	source *Source
	doc    *model.BudgetDocument
}

func NewSession(src *Source) *Session {
	return &Session{state: StateIdle, source: src}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Source() (Source, bool) {
	if s.source == nil {
		return Source{}, false
	}
	return *s.source, true
}

// Document returns the current document; ok is false while idle.
func (s *Session) Document() (model.BudgetDocument, bool) {
	if s.doc == nil {
		return model.BudgetDocument{}, false
	}
	return *s.doc, true
}

// ResultChanged replaces the upstream result and discards any document,
// whatever state the session was in.
func (s *Session) ResultChanged(src *Source) {
	s.source = src
	s.doc = nil
	s.state = StateIdle
}

// Generate snapshots the current result into a fresh document.
func (s *Session) Generate(now time.Time) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: cannot generate from %s", ErrInvalidState, s.state)
	}
	if s.source == nil {
		return fmt.Errorf("%w: no result to generate from", ErrInvalidState)
	}
	doc, err := Build(*s.source, now)
	if err != nil {
		return err
	}
	s.doc = &doc
	s.state = StateGenerated
	return nil
}

// ToggleEdit flips between Generated and Editing without touching the document.
func (s *Session) ToggleEdit() error {
	switch s.state {
	case StateGenerated:
		s.state = StateEditing
	case StateEditing:
		s.state = StateGenerated
	case StateIdle:
		return fmt.Errorf("%w: nothing to edit", ErrInvalidState)
	}
	return nil
}

// Apply edits one field. Edits are only accepted while Editing.
func (s *Session) Apply(change Change) (model.BudgetDocument, error) {
	if err := s.requireEditing(); err != nil {
		return model.BudgetDocument{}, err
	}
	doc, err := Apply(*s.doc, change)
	if err != nil {
		return model.BudgetDocument{}, err
	}
	s.doc = &doc
	return doc, nil
}

func (s *Session) SelectPrice(choice model.PriceChoice) (model.BudgetDocument, error) {
	if err := s.requireEditing(); err != nil {
		return model.BudgetDocument{}, err
	}
	doc, err := SelectPrice(*s.doc, choice)
	if err != nil {
		return model.BudgetDocument{}, err
	}
	s.doc = &doc
	return doc, nil
}

func (s *Session) requireEditing() error {
	switch {
	case s.doc == nil:
		return fmt.Errorf("%w: no document", ErrInvalidState)
	case s.state != StateEditing:
		return fmt.Errorf("%w: edits need the editing state, session is %s", ErrInvalidState, s.state)
	}
	return nil
}
