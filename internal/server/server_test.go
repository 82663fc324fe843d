package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seanhalberthal/jsoncstrip/internal/jsonc"
	"github.com/seanhalberthal/jsoncstrip/internal/stripper"
	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

// getStructuredContent returns the StructuredContent from a result.
func getStructuredContent[T any](t *testing.T, result *mcp.CallToolResultFor[T]) T {
	t.Helper()
	return result.StructuredContent
}

// setupTestStripper initialises the package-level strip variable for testing.
func setupTestStripper(t *testing.T) {
	t.Helper()
	strip = stripper.New(nil)
}

// createTestProject creates a temporary directory with the given files.
func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return tmpDir
}

func boolPtr(b bool) *bool {
	return &b
}

// TestHandleStatus tests the status handler.
func TestHandleStatus(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[StatusInput]{
		Arguments: StatusInput{},
	}

	result, err := handleStatus(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStatus() error = %v", err)
	}

	if result.IsError {
		t.Error("handleStatus() returned IsError = true")
	}

	status := getStructuredContent(t, result)
	if status.Version != types.Version {
		t.Errorf("Version = %q, want %q", status.Version, types.Version)
	}
	if len(status.SupportedComments) == 0 {
		t.Error("SupportedComments is empty")
	}
	if len(status.Config.Extensions) == 0 {
		t.Error("Config.Extensions is empty")
	}
}

func TestHandleStrip(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[StripInput]{
		Arguments: StripInput{Content: `{/* Comment */"hi": /** abc */ "bye"}`},
	}

	result, err := handleStrip(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleStrip() error = %v", err)
	}
	if result.IsError {
		t.Error("handleStrip() returned IsError = true")
	}

	out := getStructuredContent(t, result)
	want := `{             "hi":            "bye"}`
	if out.Content != want {
		t.Errorf("Content = %q, want %q", out.Content, want)
	}
	if out.Bytes != int64(len(want)) {
		t.Errorf("Bytes = %d, want %d", out.Bytes, len(want))
	}
	if out.Blanked != 23 {
		t.Errorf("Blanked = %d, want 23", out.Blanked)
	}
}

func TestHandleStrip_Errors(t *testing.T) {
	setupTestStripper(t)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "incomplete string", content: `"foo`, wantErr: jsonc.ErrIncompleteString},
		{name: "incomplete comment", content: `/* foo `, wantErr: jsonc.ErrIncompleteComment},
		{name: "unclosed after star", content: `/* foo *`, wantErr: jsonc.ErrIncompleteComment},
		{name: "stray slash", content: `a/b`, wantErr: jsonc.ErrUnexpectedForwardSlash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &mcp.CallToolParamsFor[StripInput]{
				Arguments: StripInput{Content: tt.content},
			}

			result, err := handleStrip(context.Background(), nil, params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("handleStrip() error = %v, want %v", err, tt.wantErr)
			}
			if result == nil || !result.IsError {
				t.Error("handleStrip() IsError = false, want true")
			}
		})
	}
}

func TestHandleStrip_Empty(t *testing.T) {
	setupTestStripper(t)

	result, err := handleStrip(context.Background(), nil, &mcp.CallToolParamsFor[StripInput]{})
	if err != nil {
		t.Fatalf("handleStrip() error = %v", err)
	}
	if out := getStructuredContent(t, result); out.Content != "" || out.Bytes != 0 {
		t.Errorf("result = %+v, want empty", out)
	}
}

func TestHandleCheck_ValidPath(t *testing.T) {
	setupTestStripper(t)

	projectDir := createTestProject(t, map[string]string{
		"tsconfig.json":         "{\n  // options\n  \"strict\": true\n}",
		".vscode/settings.json": `{"a": "open`,
		"pkg/broken.jsonc":      `{"a": 1} /* open`,
	})

	params := &mcp.CallToolParamsFor[CheckInput]{
		Arguments: CheckInput{Path: projectDir},
	}

	result, err := handleCheck(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}
	if result.IsError {
		t.Error("handleCheck() returned IsError = true")
	}

	check := getStructuredContent(t, result)
	if check.Summary.FilesChecked != 1 {
		t.Errorf("FilesChecked = %d, want 1", check.Summary.FilesChecked)
	}
	if check.Summary.FilesFailed != 0 {
		t.Errorf("FilesFailed = %d, want 0", check.Summary.FilesFailed)
	}
}

func TestHandleCheck_Recursive(t *testing.T) {
	setupTestStripper(t)

	projectDir := createTestProject(t, map[string]string{
		"tsconfig.json":    "{}",
		"pkg/broken.jsonc": `{"a": 1} /* open`,
	})

	params := &mcp.CallToolParamsFor[CheckInput]{
		Arguments: CheckInput{Path: projectDir, Recursive: true},
	}

	result, err := handleCheck(context.Background(), nil, params)
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}

	check := getStructuredContent(t, result)
	if check.Summary.FilesChecked != 2 || check.Summary.FilesFailed != 1 {
		t.Fatalf("Summary = %+v, want 2 checked, 1 failed", check.Summary)
	}
	for _, fr := range check.Files {
		if filepath.Base(fr.Path) == "broken.jsonc" && fr.Kind != types.KindIncompleteComment {
			t.Errorf("broken.jsonc Kind = %q, want %q", fr.Kind, types.KindIncompleteComment)
		}
	}
}

func TestHandleCheck_ValidateOverride(t *testing.T) {
	setupTestStripper(t)

	projectDir := createTestProject(t, map[string]string{
		"trailing.json": `{"a": 1,}`,
	})

	tests := []struct {
		name       string
		validate   *bool
		wantFailed int
	}{
		{name: "config default validates", validate: nil, wantFailed: 1},
		{name: "explicitly disabled", validate: boolPtr(false), wantFailed: 0},
		{name: "explicitly enabled", validate: boolPtr(true), wantFailed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &mcp.CallToolParamsFor[CheckInput]{
				Arguments: CheckInput{Path: projectDir, Validate: tt.validate},
			}

			result, err := handleCheck(context.Background(), nil, params)
			if err != nil {
				t.Fatalf("handleCheck() error = %v", err)
			}
			if got := getStructuredContent(t, result).Summary.FilesFailed; got != tt.wantFailed {
				t.Errorf("FilesFailed = %d, want %d", got, tt.wantFailed)
			}
		})
	}
}

func TestHandleCheck_EmptyPath(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[CheckInput]{
		Arguments: CheckInput{Path: ""},
	}

	result, err := handleCheck(context.Background(), nil, params)
	if err == nil {
		t.Error("handleCheck() expected error for empty path")
	}
	if result == nil || !result.IsError {
		t.Error("handleCheck() IsError = false, want true")
	}
}

func TestHandleCheck_NonexistentPath(t *testing.T) {
	setupTestStripper(t)

	params := &mcp.CallToolParamsFor[CheckInput]{
		Arguments: CheckInput{Path: "/nonexistent/path/that/does/not/exist"},
	}

	result, err := handleCheck(context.Background(), nil, params)
	if err == nil {
		t.Error("handleCheck() expected error for nonexistent path")
	}
	if result == nil || !result.IsError {
		t.Error("handleCheck() IsError = false, want true")
	}
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("registerTools() panicked: %v", r)
		}
	}()
	registerTools(server)
}
