package huhforms

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
)

func TestCreateTaskForm_WritesContent(t *testing.T) {
	content := ""
	confirm := true
	form := CreateTaskForm(&content, &confirm)
	form.Init()

	for _, r := range "Ship" {
		model, _ := form.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		form = model.(*huh.Form)
	}

	if content != "Ship" {
		t.Errorf("content = %q, want Ship", content)
	}
	if form.State != huh.StateNormal {
		t.Errorf("State = %v, want StateNormal while typing", form.State)
	}
	if !confirm {
		t.Error("confirm should keep its default while typing")
	}
}

func TestCreateTaskForm_RejectsEmptyContent(t *testing.T) {
	content := ""
	confirm := true
	form := CreateTaskForm(&content, &confirm)
	form.Init()

	model, _ := form.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	form = model.(*huh.Form)

	if len(form.Errors()) == 0 {
		t.Error("enter on empty content should report a validation error")
	}
	if form.State != huh.StateNormal {
		t.Errorf("State = %v, want StateNormal", form.State)
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"Write spec", false},
		{"  padded  ", false},
		{"", true},
		{"   ", true},
	}

	for _, tt := range tests {
		err := validateContent(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateContent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestCreateTaskKeyMap_ArrowsMoveBetweenFields(t *testing.T) {
	km := CreateTaskKeyMap()

	if keys := km.Input.Next.Keys(); !contains(keys, "down") || !contains(keys, "enter") {
		t.Errorf("Input.Next keys = %v, want enter and down", keys)
	}
	if keys := km.Input.Prev.Keys(); !contains(keys, "up") {
		t.Errorf("Input.Prev keys = %v, want up", keys)
	}
}

func contains(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
