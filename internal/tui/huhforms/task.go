package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// TaskContentLimit caps the length of a task typed into the form
const TaskContentLimit = 500

// CreateTaskForm creates a huh form for adding a task.
// The form writes through the content and confirm pointers as the user types.
func CreateTaskForm(content *string, confirm *bool) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("content").
			Title("Content").
			Placeholder("Write a task...").
			CharLimit(TaskContentLimit).
			Validate(validateContent).
			Value(content),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Add this task?").
			Affirmative("Add").
			Negative("Cancel").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateTaskKeyMap()).WithShowHelp(false)
}

func validateContent(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("task content cannot be empty")
	}
	return nil
}
