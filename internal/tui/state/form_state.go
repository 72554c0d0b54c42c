package state

import (
	"strings"

	"charm.land/huh/v2"
)

// FormState holds the add task form and the values it writes to.
type FormState struct {
	TaskForm    *huh.Form // nil when no form is open
	TaskContent string    // Form field: task content
	TaskConfirm bool      // Form field: confirmation (add vs cancel)
}

// NewFormState creates a new FormState with no open form.
func NewFormState() *FormState {
	return &FormState{TaskConfirm: true}
}

// ClearTaskForm closes the form and resets its values.
func (s *FormState) ClearTaskForm() {
	s.TaskForm = nil
	s.TaskContent = ""
	s.TaskConfirm = true
}

// HasTaskContent reports whether anything other than whitespace was typed.
func (s *FormState) HasTaskContent() bool {
	return strings.TrimSpace(s.TaskContent) != ""
}
