package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Test Helpers
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// capture redirects *target (os.Stdout or os.Stderr) while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	*target = old
	return <-outC
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.Success(mockDataWithID{ID: "task-1", Name: "Test"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if !result["success"].(bool) {
		t.Error("Expected success to be true")
	}
	dataMap := result["data"].(map[string]any)
	if dataMap["ID"] != "task-1" {
		t.Errorf("Expected data.ID to be 'task-1', got %v", dataMap["ID"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantOutput string
	}{
		{
			name:       "with ID",
			data:       mockDataWithID{ID: "task-42", Name: "Test"},
			wantOutput: "task-42",
		},
		{
			name:       "without ID falls back to human output",
			data:       mockDataWithoutID{Name: "n", Value: 7},
			wantOutput: "{Name:n Value:7}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, &os.Stdout, func() {
				formatter := &OutputFormatter{Quiet: true}
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if strings.TrimSpace(output) != tt.wantOutput {
				t.Errorf("Expected %q, got %q", tt.wantOutput, output)
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND", "unknown column", "try todo"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "COLUMN_NOT_FOUND" {
		t.Errorf("Expected code COLUMN_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "try todo" {
		t.Errorf("Expected suggestion 'try todo', got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		formatter := &OutputFormatter{}
		_ = formatter.ErrorWithSuggestion("EMPTY_CONTENT", "task content cannot be empty", "add some text")
	})

	if !strings.Contains(output, "Error: task content cannot be empty") {
		t.Errorf("Expected error message, got %q", output)
	}
	if !strings.Contains(output, "Suggestion: add some text") {
		t.Errorf("Expected suggestion, got %q", output)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	cause := errors.New("boom")
	var err error
	_ = capture(t, &os.Stderr, func() {
		formatter := &OutputFormatter{}
		err = formatter.Fail(ExitNotFound, "TASK_NOT_FOUND", cause, "")
	})

	if ExitCode(err) != ExitNotFound {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitNotFound)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected error to wrap cause, got %v", err)
	}
	if !Reported(err) {
		t.Error("Expected Fail to mark the error as reported")
	}
	if Reported(WithExitCode(ExitError, cause)) {
		t.Error("WithExitCode should not mark the error as reported")
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("x"), ExitError},
		{"tagged", WithExitCode(ExitValidation, errors.New("x")), ExitValidation},
		{"wrapped tag", errors.Join(errors.New("ctx"), WithExitCode(ExitUsage, nil)), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseColumnArg(t *testing.T) {
	formatter := &OutputFormatter{}

	key, err := ParseColumnArg(formatter, "In Progress")
	if err != nil {
		t.Fatalf("ParseColumnArg() failed: %v", err)
	}
	if key != "inprogress" {
		t.Errorf("key = %s, want inprogress", key)
	}

	_ = capture(t, &os.Stderr, func() {
		_, err = ParseColumnArg(formatter, "archived")
	})
	if ExitCode(err) != ExitValidation {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitValidation)
	}
}

func TestFormatAvailableColumns(t *testing.T) {
	if got := FormatAvailableColumns(); got != "todo, inprogress, complete" {
		t.Errorf("FormatAvailableColumns() = %q", got)
	}
}
